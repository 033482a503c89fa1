package banner

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/text/cases"
	"gopkg.in/yaml.v3"

	"github.com/osse101/WishBot_Go/internal/domain"
	"github.com/osse101/WishBot_Go/internal/gacha"
	"github.com/osse101/WishBot_Go/internal/logger"
)

//go:embed defaults/*.yaml
var defaultFiles embed.FS

// Defaults returns the built-in banner set used when no directory is configured.
func Defaults() fs.FS {
	sub, err := fs.Sub(defaultFiles, "defaults")
	if err != nil {
		return defaultFiles
	}
	return sub
}

// Banner is a loaded, validated banner. Config is shared read-only by every draw.
type Banner struct {
	ID         string
	Title      string
	GachaType  int
	ScheduleID int
	BeginTime  *time.Time
	EndTime    *time.Time
	Config     *gacha.BannerConfig
}

// ActiveAt reports whether now falls inside the banner's schedule. Missing bounds are open.
func (b *Banner) ActiveAt(now time.Time) bool {
	if b.BeginTime != nil && now.Before(*b.BeginTime) {
		return false
	}
	if b.EndTime != nil && !now.Before(*b.EndTime) {
		return false
	}
	return true
}

// Summary describes the banner for listings.
func (b *Banner) Summary(now time.Time) domain.BannerSummary {
	return domain.BannerSummary{
		ID:              b.ID,
		Title:           b.Title,
		BannerType:      b.Config.Type,
		GachaType:       b.GachaType,
		ScheduleID:      b.ScheduleID,
		RateUpItems5:    append([]int{}, b.Config.RateUpItems5...),
		RateUpItems4:    append([]int{}, b.Config.RateUpItems4...),
		WishMaxProgress: b.Config.WishMaxProgress,
		BeginTime:       b.BeginTime,
		EndTime:         b.EndTime,
		Active:          b.ActiveAt(now),
	}
}

// Catalog holds the banners read from a directory of YAML files. It is safe for
// concurrent use; Reload swaps the whole set atomically.
type Catalog struct {
	mu      sync.RWMutex
	source  fs.FS
	banners map[string]*Banner
	ordered []*Banner
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{banners: make(map[string]*Banner)}
}

// Load reads every *.yaml file in dir.
func (c *Catalog) Load(dir string) error {
	return c.LoadFS(os.DirFS(dir))
}

// LoadFS reads every *.yaml file at the root of fsys and remembers fsys for Reload.
func (c *Catalog) LoadFS(fsys fs.FS) error {
	banners, err := readAll(fsys)
	if err != nil {
		return err
	}
	c.swap(fsys, banners)
	return nil
}

// Reload re-reads the last loaded source. On error the current set is kept.
func (c *Catalog) Reload(ctx context.Context) (int, error) {
	c.mu.RLock()
	src := c.source
	c.mu.RUnlock()
	if src == nil {
		return 0, fmt.Errorf("%w: catalog was never loaded", domain.ErrInvalidInput)
	}

	banners, err := readAll(src)
	if err != nil {
		logger.FromContext(ctx).Error("Banner reload failed, keeping current set", "error", err)
		return 0, err
	}
	c.swap(src, banners)
	logger.FromContext(ctx).Info("Banner catalog reloaded", "count", len(banners))
	return len(banners), nil
}

// Get returns the banner with the given id. Ids are matched case-insensitively.
func (c *Catalog) Get(id string) (*Banner, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	b, ok := c.banners[foldKey(id)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrBannerNotFound, id)
	}
	return b, nil
}

// List returns every banner ordered by schedule then id.
func (c *Catalog) List() []*Banner {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]*Banner(nil), c.ordered...)
}

// Active returns the banners running at now.
func (c *Catalog) Active(now time.Time) []*Banner {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var out []*Banner
	for _, b := range c.ordered {
		if b.ActiveAt(now) {
			out = append(out, b)
		}
	}
	return out
}

// Len returns the number of loaded banners.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.ordered)
}

func (c *Catalog) swap(src fs.FS, banners []*Banner) {
	byID := make(map[string]*Banner, len(banners))
	for _, b := range banners {
		byID[foldKey(b.ID)] = b
	}
	c.mu.Lock()
	c.source = src
	c.banners = byID
	c.ordered = banners
	c.mu.Unlock()
}

// foldKey normalizes an id for lookups. A Caser is stateful, so one is built per call.
func foldKey(id string) string {
	return cases.Fold().String(strings.TrimSpace(id))
}

func readAll(fsys fs.FS) ([]*Banner, error) {
	names, err := fs.Glob(fsys, "*.yaml")
	if err != nil {
		return nil, err
	}
	sort.Strings(names)

	seen := make(map[string]string, len(names))
	banners := make([]*Banner, 0, len(names))
	for _, name := range names {
		b, err := readFile(fsys, name)
		if err != nil {
			return nil, err
		}
		key := foldKey(b.ID)
		if prev, dup := seen[key]; dup {
			return nil, fmt.Errorf("%w: banner id %q defined in both %s and %s", domain.ErrInvalidInput, b.ID, prev, name)
		}
		seen[key] = name
		banners = append(banners, b)
	}

	sort.SliceStable(banners, func(i, j int) bool {
		if banners[i].ScheduleID != banners[j].ScheduleID {
			return banners[i].ScheduleID < banners[j].ScheduleID
		}
		return banners[i].ID < banners[j].ID
	})
	return banners, nil
}

func readFile(fsys fs.FS, name string) (*Banner, error) {
	raw, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}

	var def Definition
	if err := yaml.Unmarshal(raw, &def); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", domain.ErrInvalidInput, name, err)
	}
	if def.ID == "" {
		def.ID = strings.TrimSuffix(path.Base(name), ".yaml")
	}
	return Build(&def)
}

// Build validates def and turns it into a Banner.
func Build(def *Definition) (*Banner, error) {
	if err := def.Validate(); err != nil {
		return nil, err
	}
	cfg, err := def.Config()
	if err != nil {
		return nil, err
	}
	begin, _ := parseTime(def.BeginTime)
	end, _ := parseTime(def.EndTime)

	return &Banner{
		ID:         strings.TrimSpace(def.ID),
		Title:      def.Title,
		GachaType:  def.GachaType,
		ScheduleID: def.ScheduleID,
		BeginTime:  begin,
		EndTime:    end,
		Config:     cfg,
	}, nil
}
