package domain

// Profile is the site owner's biography block.
type Profile struct {
	Name     string `json:"name"`
	Title    string `json:"title"`
	Bio      string `json:"bio"`
	Email    string `json:"email"`
	Location string `json:"location"`
}

// Certification is one professional certification card.
type Certification struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Issuer string `json:"issuer"`
	Year   int    `json:"year"`
}

// Course is one completed course or training.
type Course struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Provider string `json:"provider"`
	Year     int    `json:"year"`
}

// Testimonial is one client quote.
type Testimonial struct {
	ID     int    `json:"id"`
	Author string `json:"author"`
	Role   string `json:"role"`
	Quote  string `json:"quote"`
}

// Catalog aggregates everything the presentation layer renders.
type Catalog struct {
	Profile        Profile         `json:"profile"`
	Certifications []Certification `json:"certifications"`
	Courses        []Course        `json:"courses"`
	Testimonials   []Testimonial   `json:"testimonials"`
}
