package catalog

import (
	"context"
	"fmt"
	"reflect"
	"time"

	"go.uber.org/zap"
	"goflare.io/ignite"

	"goflare.io/storefront/models"
)

// Cache is the slice of goflare.io/ember's MultiCache the catalog needs.
// Narrowed to an interface so tests can substitute an in-memory fake.
type Cache interface {
	Get(ctx context.Context, key string, value any) (bool, error)
	Set(ctx context.Context, key string, value any) error
	Delete(ctx context.Context, key string) error
}

const (
	keyPlans   = "plans"
	keyCoupons = "coupons"
	keyWallet  = "wallet"
)

// Catalog is the cached read side for plan, coupon and wallet lists. Entries
// are never mutated in place: writes go to the platform, then the affected
// key is invalidated so the next read refetches.
type Catalog struct {
	cache       Cache
	logger      *zap.Logger
	poolManager ignite.Manager
}

func New(cache Cache, logger *zap.Logger, poolManager ignite.Manager) (*Catalog, error) {
	if err := poolManager.RegisterPool(reflect.TypeOf(&models.PricingPlan{}), ignite.Config[any]{
		InitialSize: 10,
		MaxSize:     100,
		MaxIdleTime: 10 * time.Minute,
		Factory: func() (any, error) {
			return models.NewPricingPlan(), nil
		},
		Reset: func(obj any) error {
			p := obj.(*models.PricingPlan)
			*p = models.PricingPlan{}
			return nil
		},
	}); err != nil {
		return nil, fmt.Errorf("failed to register plan pool: %w", err)
	}

	return &Catalog{
		cache:       cache,
		logger:      logger,
		poolManager: poolManager,
	}, nil
}

// GetPlan returns a cached plan by id, or nil when not cached.
func (c *Catalog) GetPlan(ctx context.Context, id string) *models.PricingPlan {
	pool, err := c.poolManager.GetPool(reflect.TypeOf(&models.PricingPlan{}))
	if err != nil {
		c.logger.Warn("failed to get plan pool", zap.Error(err))
		return nil
	}
	objWrapper, err := pool.Get(ctx)
	if err != nil {
		c.logger.Warn("failed to get plan from pool", zap.Error(err))
		return nil
	}
	defer pool.Put(objWrapper)

	plan := objWrapper.Object.(*models.PricingPlan)
	found, err := c.cache.Get(ctx, planKey(id), plan)
	if err != nil {
		c.logger.Warn("failed to get plan from cache", zap.Error(err), zap.String("id", id))
		return nil
	}
	if !found {
		return nil
	}

	copied := *plan
	return &copied
}

// SetPlan caches one plan under its id.
func (c *Catalog) SetPlan(ctx context.Context, plan *models.PricingPlan) {
	if plan == nil || plan.ID == "" {
		return
	}
	if err := c.cache.Set(ctx, planKey(plan.ID), plan); err != nil {
		c.logger.Warn("failed to cache plan", zap.Error(err), zap.String("id", plan.ID))
	}
}

// GetPlans returns the cached plan list for a product key ("" = all).
func (c *Catalog) GetPlans(ctx context.Context, productID string) ([]*models.PricingPlan, bool) {
	var plans []*models.PricingPlan
	found, err := c.cache.Get(ctx, plansKey(productID), &plans)
	if err != nil {
		c.logger.Warn("failed to get plans from cache", zap.Error(err))
		return nil, false
	}
	return plans, found
}

// SetPlans caches the plan list for a product key.
func (c *Catalog) SetPlans(ctx context.Context, productID string, plans []*models.PricingPlan) {
	if err := c.cache.Set(ctx, plansKey(productID), plans); err != nil {
		c.logger.Warn("failed to cache plans", zap.Error(err))
	}
}

// InvalidatePlans 使方案快取失效
// InvalidatePlans drops the global list cache, the product-scoped list and
// the single-plan entry touched by a write. Called after every plan write.
func (c *Catalog) InvalidatePlans(ctx context.Context, id, productID string) {
	if err := c.cache.Delete(ctx, keyPlans); err != nil {
		c.logger.Warn("failed to invalidate plan list", zap.Error(err))
	}
	if productID != "" {
		if err := c.cache.Delete(ctx, plansKey(productID)); err != nil {
			c.logger.Warn("failed to invalidate product plan list", zap.Error(err), zap.String("product_id", productID))
		}
	}
	if id != "" {
		if err := c.cache.Delete(ctx, planKey(id)); err != nil {
			c.logger.Warn("failed to invalidate plan", zap.Error(err), zap.String("id", id))
		}
	}
}

// GetCoupons returns the cached coupon list.
func (c *Catalog) GetCoupons(ctx context.Context) ([]*models.Coupon, bool) {
	var coupons []*models.Coupon
	found, err := c.cache.Get(ctx, keyCoupons, &coupons)
	if err != nil {
		c.logger.Warn("failed to get coupons from cache", zap.Error(err))
		return nil, false
	}
	return coupons, found
}

// SetCoupons caches the coupon list.
func (c *Catalog) SetCoupons(ctx context.Context, coupons []*models.Coupon) {
	if err := c.cache.Set(ctx, keyCoupons, coupons); err != nil {
		c.logger.Warn("failed to cache coupons", zap.Error(err))
	}
}

// InvalidateCoupons drops the coupon list cache.
func (c *Catalog) InvalidateCoupons(ctx context.Context) {
	if err := c.cache.Delete(ctx, keyCoupons); err != nil {
		c.logger.Warn("failed to invalidate coupons", zap.Error(err))
	}
}

// GetWallet returns the cached wallet snapshot.
func (c *Catalog) GetWallet(ctx context.Context) (*models.Wallet, bool) {
	var wallet models.Wallet
	found, err := c.cache.Get(ctx, keyWallet, &wallet)
	if err != nil {
		c.logger.Warn("failed to get wallet from cache", zap.Error(err))
		return nil, false
	}
	if !found {
		return nil, false
	}
	return &wallet, true
}

// SetWallet caches the wallet snapshot.
func (c *Catalog) SetWallet(ctx context.Context, wallet *models.Wallet) {
	if err := c.cache.Set(ctx, keyWallet, wallet); err != nil {
		c.logger.Warn("failed to cache wallet", zap.Error(err))
	}
}

// InvalidateWallet drops the wallet cache, e.g. after a payout request.
func (c *Catalog) InvalidateWallet(ctx context.Context) {
	if err := c.cache.Delete(ctx, keyWallet); err != nil {
		c.logger.Warn("failed to invalidate wallet", zap.Error(err))
	}
}

func planKey(id string) string {
	return fmt.Sprintf("plan:%s", id)
}

func plansKey(productID string) string {
	if productID == "" {
		return keyPlans
	}
	return fmt.Sprintf("%s:product:%s", keyPlans, productID)
}
