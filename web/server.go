// ABOUTME: Public profile web server
// ABOUTME: Serves shareable profile pages and vCard downloads by handle
package web

import (
	"fmt"
	"html/template"
	"log"
	"net/http"
	"strings"

	"github.com/paradiigm/cardstack/export"
	"github.com/paradiigm/cardstack/store"
)

const profilePage = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Contact.Name}}</title>
<style>
body { font-family: system-ui, sans-serif; max-width: 480px; margin: 40px auto; padding: 0 16px; color: #1a1a2e; }
h1 { margin-bottom: 0; }
.role { color: #666; margin-top: 4px; }
.ribbon { display: inline-block; background: #1a1a2e; color: #fff; padding: 2px 10px; border-radius: 12px; font-size: 13px; }
.tags span { background: #eee; border-radius: 10px; padding: 2px 8px; margin-right: 4px; font-size: 13px; }
a.button { display: inline-block; margin-top: 16px; padding: 8px 16px; background: #1a1a2e; color: #fff; text-decoration: none; border-radius: 6px; }
</style>
</head>
<body>
<h1>{{.Contact.Name}}</h1>
{{if .Contact.Role}}<p class="role">{{.Contact.Role}}{{if .Contact.Company}} · {{.Contact.Company}}{{end}}</p>{{end}}
{{if .Contact.RibbonText}}<p><span class="ribbon">{{.Contact.RibbonText}}</span></p>{{end}}
{{if .Contact.Email}}<p><a href="mailto:{{.Contact.Email}}">{{.Contact.Email}}</a></p>{{end}}
{{if .Contact.Phone}}<p>{{.Contact.Phone}}</p>{{end}}
{{if .Location}}<p>{{.Location}}</p>{{end}}
{{if .Contact.Tags}}<p class="tags">{{range .Contact.Tags}}<span>{{.}}</span>{{end}}</p>{{end}}
{{if .Contact.Notes}}<p>{{.Contact.Notes}}</p>{{end}}
<a class="button" href="/p/{{.Contact.Handle}}/vcard">Save contact</a>
</body>
</html>
`

// Server exposes public profile pages over HTTP. Only contacts that carry a
// handle are reachable; everything else stays private.
type Server struct {
	store     *store.Store
	templates *template.Template
}

func NewServer(s *store.Store) (*Server, error) {
	tmpl, err := template.New("profile").Parse(profilePage)
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	return &Server{store: s, templates: tmpl}, nil
}

func (s *Server) Start(port int) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/p/", s.handleProfile)

	addr := fmt.Sprintf(":%d", port)
	log.Printf("Serving public profiles at http://localhost%s/p/<handle>", addr)
	return http.ListenAndServe(addr, mux)
}

// handleProfile serves /p/<handle> and /p/<handle>/vcard.
func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/p/")
	handle, tail, _ := strings.Cut(rest, "/")
	if handle == "" {
		http.NotFound(w, r)
		return
	}

	contact, ok := s.store.ContactByHandle(handle)
	if !ok || contact.Hidden {
		http.NotFound(w, r)
		return
	}

	switch tail {
	case "":
		location := contact.LocationCity
		if location == "" {
			location = contact.Address.City
		}
		data := map[string]interface{}{
			"Contact":  contact,
			"Location": location,
		}
		if err := s.templates.ExecuteTemplate(w, "profile", data); err != nil {
			log.Printf("Template error rendering profile %s: %v", handle, err)
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}

	case "vcard":
		w.Header().Set("Content-Type", "text/vcard")
		w.Header().Set("Content-Disposition",
			fmt.Sprintf("attachment; filename=%q", export.VCardFilename(contact)))
		if _, err := w.Write([]byte(export.VCard(contact))); err != nil {
			log.Printf("Error writing vCard response: %v", err)
		}

	default:
		http.NotFound(w, r)
	}
}
