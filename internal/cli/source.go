package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/aerissecure/roadmap"
	"github.com/aerissecure/roadmap/share"
	"github.com/aerissecure/roadmap/xlsx"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// ErrUnreadableLink is returned when a link carries data that cannot be decoded.
var ErrUnreadableLink = errors.New("shared data in link could not be decoded")

// dataSource is the FILE argument or --url flag accepted by the viewing
// commands.
type dataSource struct {
	url string
}

func (s *dataSource) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&s.url, "url", "", "Read the roadmap from a share link instead of a file")
}

func (s *dataSource) load(app *App, args []string) (*roadmap.Data, error) {
	switch {
	case s.url != "" && len(args) > 0:
		return nil, errors.New("give either FILE or --url, not both")
	case s.url != "":
		return openLink(s.url)
	case len(args) == 1:
		return parseFile(app, args[0])
	}
	return nil, errors.New("a spreadsheet FILE or --url is required")
}

func parseFile(app *App, path string) (*roadmap.Data, error) {
	data, err := xlsx.ParseFile(path, xlsx.WithIDSource(app.ids()))
	if err != nil {
		return nil, err
	}
	log.Info("parsed roadmap", "file", path, "goals", len(data.Goals), "items", data.Len())
	return data, nil
}

func openLink(rawURL string) (*roadmap.Data, error) {
	loc, err := share.ParseLocation(rawURL)
	if err != nil {
		return nil, err
	}
	res := share.ResolveResult(loc)
	switch {
	case !res.HasPayload:
		return nil, share.ErrNoPayload
	case res.Data == nil:
		return nil, ErrUnreadableLink
	}
	log.Info("opened share link", "goals", len(res.Data.Goals), "items", res.Data.Len())
	return res.Data, nil
}

// yearFlag is the --year flag; zero falls back to the configured year.
type yearFlag struct {
	year int
}

func (y *yearFlag) bind(cmd *cobra.Command) {
	cmd.Flags().IntVar(&y.year, "year", 0, "Calendar year to show (default from config, else current year)")
}

func (y *yearFlag) resolve(app *App) (int, error) {
	if y.year < 0 || y.year > 9999 {
		return 0, fmt.Errorf("year %d out of range", y.year)
	}
	if y.year > 0 {
		return y.year, nil
	}
	return app.Config.ResolveYear(app.now()), nil
}

func writeJSON(w io.Writer, data *roadmap.Data) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(roadmap.Normalized(data))
}
