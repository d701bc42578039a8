// Package share issues portfolio share links: the backend mints an opaque
// token, the issuer turns it into an absolute URL and best-effort copies it
// to the system clipboard.
package share

import (
	"context"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/Chethumuniraju/stockfolio/internal/common"
	"github.com/Chethumuniraju/stockfolio/internal/models"
)

// TokenAPI is the slice of the stock API the issuer depends on.
type TokenAPI interface {
	CreateShareLink(ctx context.Context) (*models.ShareToken, error)
}

// Clipboard abstracts the system clipboard so tests can run headless.
type Clipboard interface {
	WriteAll(text string) error
}

// systemClipboard writes through to the OS clipboard.
type systemClipboard struct{}

func (systemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

// Issuer builds share links against a base URL.
type Issuer struct {
	api       TokenAPI
	clipboard Clipboard
	baseURL   string
	log       *common.Logger
}

// NewIssuer creates an issuer using the system clipboard.
func NewIssuer(api TokenAPI, baseURL string, log *common.Logger) *Issuer {
	return NewIssuerWithClipboard(api, systemClipboard{}, baseURL, log)
}

// NewIssuerWithClipboard creates an issuer with an explicit clipboard.
func NewIssuerWithClipboard(api TokenAPI, cb Clipboard, baseURL string, log *common.Logger) *Issuer {
	return &Issuer{
		api:       api,
		clipboard: cb,
		baseURL:   strings.TrimRight(baseURL, "/"),
		log:       log,
	}
}

// URLFor builds the absolute share URL for a token.
func (i *Issuer) URLFor(shareID string) string {
	return i.baseURL + "/shared/" + shareID
}

// Issue requests a share token and returns the shareable link. The clipboard
// write is best effort: a headless host without a clipboard still gets a
// usable link, with Copied false.
func (i *Issuer) Issue(ctx context.Context) (*models.ShareLink, error) {
	token, err := i.api.CreateShareLink(ctx)
	if err != nil {
		return nil, err
	}

	link := &models.ShareLink{
		URL:       i.URLFor(token.ShareID),
		ShareID:   token.ShareID,
		ExpiresAt: token.ExpiresAt,
	}

	if err := i.clipboard.WriteAll(link.URL); err != nil {
		i.log.Warn().Err(err).Msg("Clipboard write failed, link still usable")
	} else {
		link.Copied = true
	}

	i.log.Info().Str("shareId", token.ShareID).Msg("Share link issued")
	return link, nil
}
