package sources

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"

	"github.com/gabriel-vasile/mimetype"
	"github.com/reusee/bf/bfconfigs"
	"github.com/reusee/bf/logs"
	"github.com/reusee/bf/nets"
	"github.com/reusee/bf/programs"
	"github.com/reusee/e5"
)

var wrap = e5.Wrap.With(e5.WrapStacktrace)

var ErrUnreadable = errors.New("unreadable source")

// Source is a program text with a name for diagnostics.
type Source struct {
	Name string
	Text string
}

// maxSize bounds sources read from streams and urls.
const maxSize = 64 << 20

// Loader fetches program sources. Text that does not look like plain text is logged, not rejected.
type Loader struct {
	logger logs.Logger
	client nets.HTTPClient
	store  programs.Store
}

func (Module) Loader(
	logger logs.Logger,
	client nets.HTTPClient,
	programsDir bfconfigs.ProgramsDir,
) Loader {
	store := programs.Builtin()
	if programsDir != "" {
		store = store.With(os.DirFS(string(programsDir)))
	}
	return Loader{
		logger: logger,
		client: client,
		store:  store,
	}
}

func (l Loader) FromFile(path string) (Source, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Source{}, wrap(fmt.Errorf("%w: %w", ErrUnreadable, err))
	}
	return l.source(path, content), nil
}

func (l Loader) FromReader(name string, r io.Reader) (Source, error) {
	content, err := readAll(r)
	if err != nil {
		return Source{}, wrap(fmt.Errorf("%w: %s: %w", ErrUnreadable, name, err))
	}
	return l.source(name, content), nil
}

func (l Loader) FromURL(ctx context.Context, url string) (Source, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Source{}, wrap(fmt.Errorf("%w: %w", ErrUnreadable, err))
	}
	resp, err := l.client.Do(req)
	if err != nil {
		return Source{}, wrap(fmt.Errorf("%w: %w", ErrUnreadable, err))
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return Source{}, fmt.Errorf("%w: %s: %s", ErrUnreadable, url, resp.Status)
	}
	content, err := readAll(resp.Body)
	if err != nil {
		return Source{}, wrap(fmt.Errorf("%w: %s: %w", ErrUnreadable, url, err))
	}
	return l.source(url, content), nil
}

// Builtin looks up name in the programs dir, then in the embedded programs.
func (l Loader) Builtin(name string) (Source, error) {
	text, err := l.store.Get(name)
	if err != nil {
		return Source{}, err
	}
	return Source{
		Name: name,
		Text: text,
	}, nil
}

func (l Loader) Names() ([]string, error) {
	return l.store.Names()
}

func (l Loader) source(name string, content []byte) Source {
	if len(content) > 0 && !isText(content) {
		l.logger.Warn("source does not look like text",
			"name", name,
			slog.String("mime", mimetype.Detect(content).String()),
		)
	}
	return Source{
		Name: name,
		Text: string(content),
	}
}

func isText(content []byte) bool {
	for t := mimetype.Detect(content); t != nil; t = t.Parent() {
		if t.Is("text/plain") {
			return true
		}
	}
	return false
}

func readAll(r io.Reader) ([]byte, error) {
	content, err := io.ReadAll(io.LimitReader(r, maxSize+1))
	if err != nil {
		return nil, err
	}
	if len(content) > maxSize {
		return nil, fmt.Errorf("larger than %d bytes", maxSize)
	}
	return content, nil
}
