package view

import "html/template"

type homeData struct {
	Heading  string
	Subtitle string
}

type notFoundData struct {
	Code    int
	Message string
}

// HomePage renders the static landing block for the root route.
func HomePage() (template.HTML, error) {
	return executeFragment("home", homeData{
		Heading:  SiteTitle,
		Subtitle: SiteDescription,
	})
}

// NotFoundPage renders the fallback block for unknown routes.
func NotFoundPage() (template.HTML, error) {
	return executeFragment("not_found", notFoundData{
		Code:    404,
		Message: "This page could not be found.",
	})
}
