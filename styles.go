package autoanchors

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/alnah/go-autoanchors/internal/assets"
)

// Stylesheet registration constants.
const (
	StyleHandle = "AutoAnchors-CSS"
	StylePath   = "css/autoanchors.css"
)

// StyleRegistrar receives stylesheet registrations from the host page renderer.
type StyleRegistrar interface {
	EnqueueStyle(handle, href string)
}

// RegisterStyles enqueues the stylesheet under StyleHandle, resolved against
// installURL. Hosts call it once at startup.
func RegisterStyles(r StyleRegistrar, installURL string) error {
	if r == nil {
		return ErrNilRegistrar
	}
	href, err := StylesheetURL(installURL)
	if err != nil {
		return err
	}
	r.EnqueueStyle(StyleHandle, href)
	return nil
}

// StylesheetURL resolves StylePath against installURL.
// installURL is treated as a directory; an empty installURL yields StylePath.
func StylesheetURL(installURL string) (string, error) {
	if installURL == "" {
		return StylePath, nil
	}

	base, err := url.Parse(installURL)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidInstallURL, err)
	}
	if !strings.HasSuffix(base.Path, "/") {
		base.Path += "/"
	}
	return base.ResolveReference(&url.URL{Path: StylePath}).String(), nil
}

// Stylesheet returns the built-in CSS for the markup classes.
func Stylesheet() string {
	return assets.DefaultStyle()
}
