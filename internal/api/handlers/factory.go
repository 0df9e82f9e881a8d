package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"energy-retrofit/internal/api/models"
	"energy-retrofit/internal/config"
	"energy-retrofit/internal/data"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// ErrInventoryNotFound is returned for an inventory_file that is not in the inventory directory.
var ErrInventoryNotFound = errors.New("inventory file not found")

var inventoryExts = []string{".yaml", ".yml"}

// InventoryStore serves inventory files from one directory.
type InventoryStore struct {
	dir string
}

// DefaultInventoryDir returns INVENTORY_DIR, or examples/factories under the working directory.
func DefaultInventoryDir() string {
	dir := os.Getenv("INVENTORY_DIR")
	if dir == "" {
		dir = filepath.Join("examples", "factories")
		if wd, err := os.Getwd(); err == nil {
			dir = filepath.Join(wd, dir)
		}
	}
	// Convert to absolute path for reliability
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	return dir
}

func NewInventoryStore(dir string) *InventoryStore {
	return &InventoryStore{dir: dir}
}

func (s *InventoryStore) Dir() string {
	return s.dir
}

// Load reads the inventory called name ("north_mill" or "north_mill.yaml").
// Only files directly inside the store's directory are reachable.
func (s *InventoryStore) Load(name string) (config.Inventory, error) {
	id := inventoryID(filepath.Base(name))
	if id == "" || id == "." || id == string(filepath.Separator) {
		return config.Inventory{}, errors.Wrapf(ErrInventoryNotFound, "%q", name)
	}
	for _, ext := range inventoryExts {
		path := filepath.Join(s.dir, id+ext)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		return config.LoadInventoryFile(path)
	}
	return config.Inventory{}, errors.Wrapf(ErrInventoryNotFound, "%q in %s", name, s.dir)
}

func inventoryID(filename string) string {
	for _, ext := range inventoryExts {
		if strings.HasSuffix(filename, ext) {
			return strings.TrimSuffix(filename, ext)
		}
	}
	return filename
}

// FactoryHandler handles factory inventory requests
type FactoryHandler struct {
	store *InventoryStore
	log   logrus.FieldLogger
}

// NewFactoryHandler creates a new factory handler
func NewFactoryHandler(store *InventoryStore, log logrus.FieldLogger) *FactoryHandler {
	return &FactoryHandler{store: store, log: log}
}

// ListFactories handles GET /api/v1/factories
// Built-in presets come first, then inventory files sorted by name.
func (h *FactoryHandler) ListFactories(c *gin.Context) {
	factories := []models.FactoryInfo{}

	for _, ft := range data.FactoryTypes() {
		p := data.Preset(ft)
		info := models.FactoryInfo{
			ID:          presetID(ft),
			Name:        ft,
			FactoryType: ft,
			Source:      "preset",
			MotorGroups: len(p.Motors),
			NumFixtures: p.Lighting.NumFixtures,
			FixtureType: p.Lighting.FixtureType,
		}
		for _, m := range p.Motors {
			info.InstalledKW += m.RatingKW * float64(m.Quantity)
		}
		if p.Source != ft {
			info.UsesPresetFrom = p.Source
		}
		factories = append(factories, info)
	}

	entries, err := os.ReadDir(h.store.Dir())
	if err != nil {
		// A missing inventory directory just means no file-based factories.
		h.log.WithError(err).WithField("dir", h.store.Dir()).Debug("inventory directory not readable")
		c.JSON(http.StatusOK, gin.H{"factories": factories})
		return
	}

	for _, entry := range entries {
		id := inventoryID(entry.Name())
		if entry.IsDir() || id == entry.Name() {
			continue
		}
		path := filepath.Join(h.store.Dir(), entry.Name())
		inv, err := config.LoadInventoryFile(path)
		if err != nil {
			h.log.WithError(err).WithField("file", path).Warn("skipping invalid inventory file")
			continue
		}
		factories = append(factories, inventoryInfo(id, path, inv))
	}

	h.log.WithField("count", len(factories)).Debug("listed factories")
	c.JSON(http.StatusOK, gin.H{"factories": factories})
}

func inventoryInfo(id, path string, inv config.Inventory) models.FactoryInfo {
	name := inv.Name
	if name == "" {
		name = id
	}
	info := models.FactoryInfo{
		ID:          id,
		Name:        name,
		FactoryType: inv.FactoryType,
		Source:      "file",
		File:        filepath.Base(path),
		MotorGroups: len(inv.Motors),
		NumFixtures: inv.Lighting.NumFixtures,
		FixtureType: inv.Lighting.FixtureType,
	}
	for _, m := range inv.Motors {
		info.InstalledKW += m.RatingKW * float64(m.Quantity)
	}
	return info
}

// presetID turns "Food Processing" into "food_processing".
func presetID(factoryType string) string {
	return strings.ReplaceAll(strings.ToLower(factoryType), " ", "_")
}
