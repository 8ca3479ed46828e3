// File: signature.go — constructing signatures from input rows and
// resolving their cross-references against a structure.
package ingest

import "github.com/nmrassign/methylcsp/model"

// RawSignature holds a signature row's fields before its assignment,
// option, and geminal references — given as methyl labels — have been
// resolved against a loaded Structure.
type RawSignature struct {
	Label    string
	Carbon   float64
	Hydrogen float64
	Colors   []string

	AsgLabels    []string
	OptionLabels []string
	GeminalLabel string
}

// NewSignature parses a row of string fields into a RawSignature. label,
// carbon, and hydrogen are required; color, assignment, options, and
// geminal are optional.
func NewSignature(fields map[string]string) (*RawSignature, error) {
	label, err := requireString(fields, "label")
	if err != nil {
		return nil, err
	}
	carbon, err := requireFloat(fields, "carbon")
	if err != nil {
		return nil, err
	}
	hydrogen, err := requireFloat(fields, "hydrogen")
	if err != nil {
		return nil, err
	}

	return &RawSignature{
		Label:        label,
		Carbon:       carbon,
		Hydrogen:     hydrogen,
		Colors:       splitColors(fields["color"]),
		AsgLabels:    splitLabels(fields["assignment"]),
		OptionLabels: splitLabels(fields["options"]),
		GeminalLabel: fields["geminal"],
	}, nil
}

// ResolveSignatures turns a batch of RawSignatures into model.Signatures,
// resolving each one's assignment and option labels against structure and
// linking geminal pairs bidirectionally by label. A reference to a methyl
// label not present in structure, or to a geminal label not present among
// raws, is silently dropped rather than treated as an error: both
// assignment hints and geminal tags are optional enrichments, not
// structural requirements.
func ResolveSignatures(raws []*RawSignature, structure *model.Structure) []*model.Signature {
	sigs := make([]*model.Signature, len(raws))
	byLabel := make(map[string]*model.Signature, len(raws))

	for i, r := range raws {
		s := model.NewSignature(r.Label, r.Carbon, r.Hydrogen, r.Colors)
		sigs[i] = s
		byLabel[r.Label] = s
	}

	for i, r := range raws {
		s := sigs[i]
		for _, label := range r.AsgLabels {
			if m, ok := structure.Methyl(label); ok {
				s.Asg = append(s.Asg, m)
			}
		}
		for _, label := range r.OptionLabels {
			if m, ok := structure.Methyl(label); ok {
				s.Options = append(s.Options, m)
			}
		}
	}

	for i, r := range raws {
		if r.GeminalLabel == "" {
			continue
		}
		if other, ok := byLabel[r.GeminalLabel]; ok {
			sigs[i].Geminal = other
			other.Geminal = sigs[i]
		}
	}

	return sigs
}
