package forms

// Login is the admin sign-in form.
type Login struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}

// Brand is the text part of the brand form; the logo and hero image travel as
// uploads.
type Brand struct {
	Name         string `form:"name" validate:"required"`
	Description  string `form:"description"`
	HeroTitle    string `form:"hero_title"`
	HeroSubtitle string `form:"hero_subtitle"`
	Content      string `form:"content"`
	HTMLContent  string `form:"html_content"`
}

// Product is the text part of the product form. Brand and category IDs are
// read from repeated fields.
type Product struct {
	Name            string `form:"name" validate:"required"`
	Slug            string `form:"slug"`
	Specifications  string `form:"specifications"`
	IsFeatured      bool   `form:"is_featured"`
	MetaTitle       string `form:"meta_title"`
	MetaDescription string `form:"meta_description"`
	MetaKeywords    string `form:"meta_keywords"`
}

// HomeCategory is a curation entry form.
type HomeCategory struct {
	Category int64  `form:"category" validate:"gt=0"`
	Title    string `form:"title"`
	Order    int    `form:"order"`
}
