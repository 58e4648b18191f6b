package web

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/Josepavese/folio/internal/themestore"
)

// ClientHintHeader carries the browser's colour-scheme preference once the
// server has asked for it with Accept-CH.
const ClientHintHeader = "Sec-CH-Prefers-Color-Scheme"

const cookieMaxAge = 365 * 24 * time.Hour

// cookieStorage is the durable theme storage of one HTTP exchange: the
// request cookie is read, a Save sets the response cookie.
type cookieStorage struct {
	r *http.Request
	w http.ResponseWriter
}

func (c cookieStorage) Load(key string) (string, error) {
	ck, err := c.r.Cookie(key)
	if errors.Is(err, http.ErrNoCookie) {
		return "", themestore.ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return ck.Value, nil
}

func (c cookieStorage) Save(key, value string) error {
	http.SetCookie(c.w, &http.Cookie{
		Name:     key,
		Value:    value,
		Path:     "/",
		MaxAge:   int(cookieMaxAge.Seconds()),
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// clientHintScheme answers the host preference from the request's client
// hint. Browsers send the token quoted: `"dark"`.
type clientHintScheme struct {
	r *http.Request
}

func (c clientHintScheme) PrefersDark() (dark, ok bool) {
	v := strings.Trim(strings.TrimSpace(c.r.Header.Get(ClientHintHeader)), `"`)
	switch strings.ToLower(v) {
	case "dark":
		return true, true
	case "light":
		return false, true
	}
	return false, false
}

// shownStorage answers Load with the mode the page was rendered in, posted
// back by the toggle form. Saves go to the cookie.
type shownStorage struct {
	cookieStorage
	shown string
}

func (s shownStorage) Load(key string) (string, error) {
	if _, ok := themestore.ParseMode(s.shown); ok {
		return s.shown, nil
	}
	return s.cookieStorage.Load(key)
}

// requestStore builds the per-request theme store and restores its mode.
// shown, when it is a mode token, wins over the cookie and the client hint.
func (s *Server) requestStore(w http.ResponseWriter, r *http.Request, shown string) *themestore.Store {
	store := themestore.New(
		shownStorage{cookieStorage: cookieStorage{r: r, w: w}, shown: shown},
		clientHintScheme{r: r},
		themestore.WithKey(s.cfg.ThemeKey),
		themestore.WithLogger(s.logger),
	)
	store.Initialize()
	return store
}
