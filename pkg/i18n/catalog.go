package i18n

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// Built-in locale names.
const (
	DefaultLocale = "default"
	LocaleZhCN    = "zh_CN"
)

var builtins = map[string]Labels{
	DefaultLocale: {
		AM:     "AM",
		PM:     "PM",
		Hour:   "Hour(s)",
		Minute: "Minute(s)",
		Second: "Second(s)",
	},
	LocaleZhCN: {
		AM:     "上午",
		PM:     "下午",
		Hour:   "小时",
		Minute: "分钟",
		Second: "秒",
	},
}

// Default returns the built-in English labels.
func Default() Labels {
	return builtins[DefaultLocale]
}

// Catalog stores label tables by locale name. It is safe for concurrent use.
type Catalog struct {
	mu     sync.RWMutex
	tables map[string]Labels
}

// NewCatalog constructs a catalog holding the built-in tables. The zero
// value is equivalent.
func NewCatalog() *Catalog {
	return &Catalog{tables: copyBuiltins()}
}

func copyBuiltins() map[string]Labels {
	tables := make(map[string]Labels, len(builtins))
	for name, labels := range builtins {
		tables[name] = labels
	}
	return tables
}

// Register stores labels under name, replacing any existing table. Missing
// entries are filled from the default table.
func (c *Catalog) Register(name string, labels Labels) error {
	if c == nil {
		return errors.New("i18n: catalog is nil")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return errors.New("i18n: locale name is required")
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.tables == nil {
		c.tables = copyBuiltins()
	}
	c.tables[name] = Default().Merge(labels)
	return nil
}

// Lookup returns the table registered under name.
func (c *Catalog) Lookup(name string) (Labels, bool) {
	name = strings.TrimSpace(name)
	if c == nil {
		labels, ok := builtins[name]
		return labels, ok
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	tables := c.tables
	if tables == nil {
		tables = builtins
	}
	labels, ok := tables[name]
	return labels, ok
}

// Resolve returns the table registered under name, or the default table.
func (c *Catalog) Resolve(name string) Labels {
	if labels, ok := c.Lookup(name); ok {
		return labels
	}
	return Default()
}

// Names returns the sorted locale names.
func (c *Catalog) Names() []string {
	tables := builtins
	if c != nil {
		c.mu.RLock()
		defer c.mu.RUnlock()
		if c.tables != nil {
			tables = c.tables
		}
	}
	names := make([]string, 0, len(tables))
	for name := range tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Translate implements Translator using the stored tables.
func (c *Catalog) Translate(locale, key string, _ ...any) (string, error) {
	labels, ok := c.Lookup(locale)
	if !ok {
		return "", fmt.Errorf("i18n: unknown locale %q", locale)
	}
	value := labels.Get(key)
	if strings.TrimSpace(value) == "" {
		return "", fmt.Errorf("i18n: missing %q for locale %q", key, locale)
	}
	return value, nil
}

// LoadYAML registers every locale found in a document of the form
//
//	en_GB:
//	  am: am
//	  hour: Hours
//
// JSON documents are accepted as well.
func (c *Catalog) LoadYAML(r io.Reader) error {
	if c == nil {
		return errors.New("i18n: catalog is nil")
	}
	if r == nil {
		return errors.New("i18n: missing reader")
	}
	var doc map[string]Labels
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("i18n: decode locales: %w", err)
	}
	for name, labels := range doc {
		if err := c.Register(name, labels); err != nil {
			return err
		}
	}
	return nil
}

// LoadFS walks fsys and loads every .yaml, .yml and .json file.
func (c *Catalog) LoadFS(fsys fs.FS) error {
	if c == nil {
		return errors.New("i18n: catalog is nil")
	}
	if fsys == nil {
		return nil
	}
	return fs.WalkDir(fsys, ".", func(p string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isLocaleFile(p) {
			return nil
		}
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return fmt.Errorf("i18n: read %s: %w", p, err)
		}
		if err := c.LoadYAML(bytes.NewReader(data)); err != nil {
			return fmt.Errorf("%w (file %s)", err, p)
		}
		return nil
	})
}

func isLocaleFile(p string) bool {
	switch strings.ToLower(path.Ext(p)) {
	case ".yaml", ".yml", ".json":
		return true
	default:
		return false
	}
}
