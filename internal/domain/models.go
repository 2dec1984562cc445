package domain

// Deck is an ordered, fixed-length sequence of slides loaded from one file
type Deck struct {
	Title  string
	Path   string
	Slides []Slide
}

// Len returns the number of slides in the deck
func (d *Deck) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Slides)
}

// Slide returns the slide at a 1-based position, or nil when out of range
func (d *Deck) Slide(number int) *Slide {
	if d == nil || number < 1 || number > len(d.Slides) {
		return nil
	}
	return &d.Slides[number-1]
}

// Clone returns a deep copy of the deck, so image statuses can be updated
// off the UI goroutine
func (d *Deck) Clone() *Deck {
	if d == nil {
		return nil
	}
	c := *d
	c.Slides = make([]Slide, len(d.Slides))
	for i, s := range d.Slides {
		s.Images = append([]ImageRef(nil), s.Images...)
		c.Slides[i] = s
	}
	return &c
}

// Slide represents one content panel
type Slide struct {
	Number int    // 1-based position in the deck
	Title  string // first heading, or "Slide N"
	Body   string // markdown source of the slide
	Images []ImageRef
}

// ImageStatus tracks whether a slide image could be found
type ImageStatus int

const (
	ImagePending ImageStatus = iota
	ImageLoaded
	ImageMissing
	ImageRemote
)

func (s ImageStatus) String() string {
	switch s {
	case ImageLoaded:
		return "loaded"
	case ImageMissing:
		return "missing"
	case ImageRemote:
		return "remote"
	default:
		return "pending"
	}
}

// ImageRef is an image referenced from a slide body
type ImageRef struct {
	Alt    string
	Source string // as written in the deck
	Path   string // resolved against the deck directory; empty for remote images
	Status ImageStatus
}
