package http

import (
	"encoding/xml"
	"fmt"
	"net/http"
	"strings"

	"github.com/dailydoit/dailydoit/internal/logger"
)

// sitemapPaths are the public pages listed in the sitemap.
var sitemapPaths = []string{"/", "/signin", "/signup", "/privacy-policy"}

type sitemapURL struct {
	Loc string `xml:"loc"`
}

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

func (h *Handler) sitemap(w http.ResponseWriter, r *http.Request) {
	base := strings.TrimRight(h.baseURL, "/")

	set := sitemapURLSet{XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	for _, path := range sitemapPaths {
		set.URLs = append(set.URLs, sitemapURL{Loc: base + path})
	}

	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.sitemap").Msg("error encoding sitemap")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(xml.Header))
	_, _ = w.Write(body)
}

func (h *Handler) robots(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintf(w, "User-agent: *\nAllow: /\nSitemap: %s/sitemap.xml\n", strings.TrimRight(h.baseURL, "/"))
}
