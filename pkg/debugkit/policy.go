package debugkit

// Policy tells how an element should be printed.
type Policy struct {
	// Pretty selects the multi-line representation over the compact one.
	Pretty bool
	// Caption is printed before the element's representation when Captioned is true.
	Caption   string
	Captioned bool
}

const captionSeparator = ": "

// Format renders v with the Renderer and prefixes the result with the caption when there is one.
func (p Policy) Format(r Renderer, v any) string {
	var repr string
	if p.Pretty {
		repr = r.Pretty(v)
	} else {
		repr = r.Compact(v)
	}
	if !p.Captioned {
		return repr
	}
	return p.Caption + captionSeparator + repr
}
