package main

import "html/template"

func loadTemplates() map[string]*template.Template {
	templates := make(map[string]*template.Template)
	pages := []string{"login.html", "register.html", "listings.html"}

	for _, page := range pages {
		templates[page] = template.Must(
			template.New("").ParseFiles(
				"templates/base.html",
				"templates/"+page,
			))
	}

	return templates
}
