package services

import (
	"bufio"
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"unicode"

	"gopkg.in/yaml.v3"

	"github.com/dmitrijs2005/aroma/internal/client/models"
	"github.com/dmitrijs2005/aroma/internal/logging"
)

var (
	ErrMenuItemNotFound = errors.New("menu item not found")
	ErrInvalidPrice     = errors.New("invalid price")
	ErrEmptyMenu        = errors.New("menu has no items")
)

//go:embed static/menu.txt
var builtinMenuMarkup string

// MenuService serves the current menu and turns "buy" actions into cart adds.
//
// Until Load succeeds the built-in menu is served. Load failures are logged and
// never reported to the caller.
type MenuService interface {
	Load(ctx context.Context)
	Menu() models.Menu
	Buy(ctx context.Context, name string) (models.LineItem, error)
}

type menuService struct {
	source string
	client *http.Client
	cart   CartService
	log    logging.Logger

	mu   sync.RWMutex
	menu models.Menu
}

// NewMenuService returns a MenuService that loads from source: an http(s) URL,
// a local file path, or "" for the built-in menu only.
func NewMenuService(source string, client *http.Client, cart CartService, log logging.Logger) MenuService {
	return &menuService{
		source: source,
		client: client,
		cart:   cart,
		log:    log.With("component", "menu"),
		menu:   BuiltinMenu(),
	}
}

func (m *menuService) Load(ctx context.Context) {
	if m.source == "" {
		return
	}

	menu, err := FetchMenu(ctx, m.client, m.source)
	if err != nil {
		m.log.Warn(ctx, "menu not loaded, using built-in menu", "source", m.source, "error", err)
		return
	}

	m.mu.Lock()
	m.menu = menu
	m.mu.Unlock()
	m.log.Info(ctx, "menu loaded", "source", m.source, "items", menu.Len())
}

func (m *menuService) Menu() models.Menu {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.menu
}

func (m *menuService) Buy(ctx context.Context, name string) (models.LineItem, error) {
	item, ok := m.Menu().Find(name)
	if !ok {
		return models.LineItem{}, fmt.Errorf("%w: %q", ErrMenuItemNotFound, name)
	}
	return m.cart.AddItem(ctx, item.Name, item.Price)
}

// FetchMenu reads and decodes a menu description from a URL or a file.
func FetchMenu(ctx context.Context, client *http.Client, source string) (models.Menu, error) {
	var (
		data   []byte
		format string
		err    error
	)

	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		data, format, err = fetchHTTP(ctx, client, source)
	} else {
		data, err = os.ReadFile(source)
		format = formatFromExt(filepath.Ext(source))
	}
	if err != nil {
		return models.Menu{}, err
	}

	return DecodeMenu(data, format)
}

func fetchHTTP(ctx context.Context, client *http.Client, url string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", err
	}
	req.Header.Set("Accept", "application/json, application/yaml;q=0.9")

	resp, err := client.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("fetch menu: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("fetch menu: unexpected status %s", resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, "", fmt.Errorf("read menu body: %w", err)
	}

	format := formatFromExt(path.Ext(req.URL.Path))
	if mt, _, err := mime.ParseMediaType(resp.Header.Get("Content-Type")); err == nil && strings.Contains(mt, "yaml") {
		format = "yaml"
	}
	return data, format, nil
}

func formatFromExt(ext string) string {
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		return "yaml"
	default:
		return "json"
	}
}

// DecodeMenu parses a JSON or YAML menu description. A menu without items is
// rejected.
func DecodeMenu(data []byte, format string) (models.Menu, error) {
	var menu models.Menu
	var err error
	switch format {
	case "yaml":
		err = yaml.Unmarshal(data, &menu)
	default:
		err = json.Unmarshal(data, &menu)
	}
	if err != nil {
		return models.Menu{}, fmt.Errorf("decode %s menu: %w", format, err)
	}
	if menu.Len() == 0 {
		return models.Menu{}, ErrEmptyMenu
	}
	return menu, nil
}

// ParsePrice reads the leading integer of a price label, so "12 lei" is 12.
// Anything after the digits is ignored; a label that does not start with a
// number, or starts with a negative one, is an error.
func ParsePrice(label string) (int64, error) {
	s := strings.TrimLeftFunc(label, unicode.IsSpace)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPrice, label)
	}
	v, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPrice, label)
	}
	return v, nil
}

// ParseMenuMarkup reads the line-oriented markup of the built-in menu. Blank
// lines and lines starting with a single "#" are ignored.
func ParseMenuMarkup(r io.Reader) (models.Menu, error) {
	var menu models.Menu
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		switch {
		case text == "":
			continue
		case strings.HasPrefix(text, "## "):
			menu.Sections = append(menu.Sections, models.MenuSection{Title: strings.TrimSpace(text[3:])})
			continue
		case strings.HasPrefix(text, "#"):
			continue
		}

		parts := strings.Split(text, "|")
		if len(parts) < 2 {
			return models.Menu{}, fmt.Errorf("menu markup line %d: want \"name | price\"", line)
		}
		price, err := ParsePrice(parts[1])
		if err != nil {
			return models.Menu{}, fmt.Errorf("menu markup line %d: %w", line, err)
		}
		item := models.MenuItem{Name: strings.TrimSpace(parts[0]), Price: price}
		if len(parts) > 2 {
			item.Description = strings.TrimSpace(strings.Join(parts[2:], "|"))
		}
		if len(menu.Sections) == 0 {
			menu.Sections = append(menu.Sections, models.MenuSection{Title: "Meniu"})
		}
		last := &menu.Sections[len(menu.Sections)-1]
		last.Items = append(last.Items, item)
	}
	if err := sc.Err(); err != nil {
		return models.Menu{}, err
	}
	return menu, nil
}

// BuiltinMenu is the menu compiled into the binary.
func BuiltinMenu() models.Menu {
	menu, err := ParseMenuMarkup(strings.NewReader(builtinMenuMarkup))
	if err != nil {
		panic(fmt.Sprintf("built-in menu: %v", err))
	}
	return menu
}
