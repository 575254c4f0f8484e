package catalog

import (
	"go.uber.org/fx"

	"github.com/mkorobko/orderbot/internal/config"
	"github.com/mkorobko/orderbot/internal/domain/repository"
)

// Module wires the catalog snapshot into the fx graph.
var Module = fx.Provide(
	func(cfg *config.Config) (*Catalog, error) {
		return Load(cfg.ProductsFile)
	},
	func(c *Catalog) repository.Catalog { return c },
)
