// Package preview holds the open/closed state of a project's image modal.
package preview

// State is the visibility of one image modal. The zero value is closed.
// A State belongs to a single project card and is only changed through
// Open and Close.
type State struct {
	open  bool
	image string
	alt   string
}

// Open shows the modal with the given image. The most recent call wins.
func (s *State) Open(image, alt string) {
	s.open = true
	s.image = image
	s.alt = alt
}

// Close hides the modal and forgets the image it was showing.
func (s *State) Close() {
	s.open = false
	s.image = ""
	s.alt = ""
}

func (s *State) IsOpen() bool  { return s.open }
func (s *State) Image() string { return s.image }
func (s *State) Alt() string   { return s.alt }
