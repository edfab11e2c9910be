package document

import "testing"

func TestRepairLogForAllFlags(t *testing.T) {
	log := repairLogFor(RepairOptions{RebuildXref: true, FixStreamLengths: true, RemoveBrokenObjects: true})
	if len(log) != 3 {
		t.Fatalf("expected 3 entries, got %d (%v)", len(log), log)
	}
	codes := map[string]bool{}
	for _, e := range log {
		codes[e.Code] = true
	}
	for _, want := range []string{"REBUILD_XREF", "FIX_STREAM_LENGTH", "REMOVE_BROKEN_OBJECTS"} {
		if !codes[want] {
			t.Fatalf("expected code %s in log %v", want, log)
		}
	}
}

func TestRepairLogForNoFlagsStillRecordsGenericEntry(t *testing.T) {
	log := repairLogFor(RepairOptions{})
	if len(log) != 1 || log[0].Code != "REPAIR" {
		t.Fatalf("expected a single generic REPAIR entry, got %v", log)
	}
}

func TestRepairLogForSingleFlag(t *testing.T) {
	log := repairLogFor(RepairOptions{FixStreamLengths: true})
	if len(log) != 1 || log[0].Code != "FIX_STREAM_LENGTH" {
		t.Fatalf("expected a single FIX_STREAM_LENGTH entry, got %v", log)
	}
}
