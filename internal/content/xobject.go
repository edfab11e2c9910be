package content

import (
	"github.com/pkg/errors"

	"github.com/plumbergo/pdfplumb/internal/pdfmodel"
)

// doXObject handles the Do operator: recurse into a Form XObject's
// content stream under a concatenated CTM (the form's /BBox is not
// applied as a clip), or emit an Image event for an Image XObject. Grounded on
// pkg/gopdf/xobject_operators.go OpDoXObject/renderFormXObject, with
// Cairo clip/paint replaced by CTM bookkeeping and an Image record.
func (ip *Interpreter) doXObject(name string) error {
	xobj := ip.Resources.GetXObject(name)
	if xobj == nil {
		return errors.Errorf("XObject %s not found", name)
	}
	switch xobj.Subtype {
	case "Form":
		return ip.runForm(xobj)
	case "Image":
		ip.emitImage(xobj)
		return nil
	default:
		return errors.Errorf("unsupported XObject subtype %q", xobj.Subtype)
	}
}

func (ip *Interpreter) runForm(xobj *XObject) error {
	if ip.formDepth >= maxFormDepth {
		ip.collector.Warn("interpreter", "Form XObject recursion limit reached")
		return nil
	}
	ip.formDepth++
	defer func() { ip.formDepth-- }()

	ip.Graphics.Push()
	defer ip.Graphics.Pop()

	gs := ip.Graphics.Current()
	gs.CTM = xobj.Matrix.Multiply(gs.CTM)

	savedResources := ip.Resources
	if xobj.Resources != nil {
		xobj.Resources.Parent = savedResources
		ip.Resources = xobj.Resources
	}
	defer func() { ip.Resources = savedResources }()

	savedPath := ip.Path
	ip.Path = newPathBuilder()
	defer func() { ip.Path = savedPath }()

	return ip.Run(xobj.Stream)
}

func (ip *Interpreter) emitImage(xobj *XObject) {
	gs := ip.Graphics.Current()
	corners := []pdfmodel.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	transformed := make([]pdfmodel.Point, 4)
	for i, c := range corners {
		x, y := gs.CTM.Transform(c.X, c.Y)
		transformed[i] = pdfmodel.Point{X: x, Y: ip.pageHeight - y}
	}
	bbox := boundingBoxOf(transformed)

	ip.collector.AddImage(pdfmodel.Image{
		BBox:             bbox,
		Width:            bbox.Width(),
		Height:           bbox.Height(),
		SrcWidth:         xobj.Width,
		SrcHeight:        xobj.Height,
		BitsPerComponent: xobj.BitsPerComponent,
		ColorSpace:       xobj.ColorSpace,
		Name:             xobj.Name,
		RawData:          xobj.RawData,
		Filters:          xobj.Filters,
		Page:             ip.pageNum,
	})
}
