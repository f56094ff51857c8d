// Package registry holds the three loaded model slots. A registry is built
// once before the server accepts traffic and never mutated afterward, so
// concurrent readers need no locking.
package registry

import (
	"github.com/smartsales/smartsales-backend/internal/logger"
	"github.com/smartsales/smartsales-backend/internal/ml/artifact"
	"github.com/smartsales/smartsales-backend/internal/ml/forest"
)

type Registry struct {
	category *forest.Regressor
	product  *forest.Regressor
	affinity *forest.Classifier
}

// New builds a registry from in-memory models. Any slot may be nil; tests
// and the DI wiring in cmd use this directly.
func New(category, product *forest.Regressor, affinity *forest.Classifier) *Registry {
	return &Registry{category: category, product: product, affinity: affinity}
}

// Load reads each artifact independently. A missing or corrupt file leaves
// that slot empty with a warning; service startup never fails on it. Freshly
// retrained artifacts are picked up by restarting the process.
func Load(dir string, log *logger.Logger) *Registry {
	regLog := log.With("component", "ModelRegistry", "dir", dir)

	r := &Registry{}
	if m, err := artifact.LoadRegressor(dir, artifact.RoleCategoryDemand); err != nil {
		regLog.Warn("Category demand model not loaded", "error", err)
	} else {
		r.category = m
		regLog.Info("Category demand model loaded", "trees", len(m.Trees))
	}
	if m, err := artifact.LoadRegressor(dir, artifact.RoleProductDemand); err != nil {
		regLog.Warn("Product demand model not loaded", "error", err)
	} else {
		r.product = m
		regLog.Info("Product demand model loaded", "trees", len(m.Trees))
	}
	if m, err := artifact.LoadClassifier(dir, artifact.RoleAffinity); err != nil {
		regLog.Warn("Recommendation model not loaded", "error", err)
	} else {
		r.affinity = m
		regLog.Info("Recommendation model loaded", "trees", len(m.Trees))
	}
	return r
}

// CategoryModel returns the subcategory monthly regressor, or nil when the
// artifact was absent at load time.
func (r *Registry) CategoryModel() *forest.Regressor { return r.category }

// ProductModel returns the product weekly regressor, or nil.
func (r *Registry) ProductModel() *forest.Regressor { return r.product }

// AffinityModel returns the co-purchase classifier, or nil.
func (r *Registry) AffinityModel() *forest.Classifier { return r.affinity }
