package model

// Image is an immutable descriptor of one resolvable picture plus its
// attribution. It carries no identity beyond its fields.
type Image struct {
	URL          string
	Photographer string
	Alt          string
}

func (i Image) IsZero() bool { return i.URL == "" }
