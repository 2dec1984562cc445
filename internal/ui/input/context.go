package input

// Navigator is the navigation state the input layer drives
type Navigator interface {
	GoTo(target int) (int, bool)
	Next() (int, bool)
	Previous() (int, bool)
	Current() int
	Total() int
}

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	Navigator Navigator
}

// CurrentSlide returns the 1-based active slide
func (c *ModelContext) CurrentSlide() int {
	if c.Navigator == nil {
		return 0
	}
	return c.Navigator.Current()
}

// TotalSlides returns the number of slides
func (c *ModelContext) TotalSlides() int {
	if c.Navigator == nil {
		return 0
	}
	return c.Navigator.Total()
}
