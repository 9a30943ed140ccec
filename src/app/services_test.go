package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"storeadmin/src/app"
	"storeadmin/src/repository"
)

type assetStore struct {
	mock.Mock
}

func (m *assetStore) DeleteAsset(ctx context.Context, publicID string) error {
	return m.Called(ctx, publicID).Error(0)
}

type testEnv struct {
	ctx      context.Context
	repo     *repository.SQLDB
	assets   *assetStore
	services *app.Services

	storeID    string
	categoryID string
	colorID    string
	sizeID     string
}

const (
	owner    = "user-owner"
	stranger = "user-stranger"
)

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	repo, err := repository.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })

	env := &testEnv{
		ctx:    context.Background(),
		repo:   repo,
		assets: &assetStore{},
	}
	env.services = app.NewServices(repo, app.NewAssetCleaner(env.assets, time.Second))

	store, err := env.services.Stores.Create(env.ctx, owner, app.StoreInput{Name: "Main"})
	require.NoError(t, err)
	env.storeID = store.ID

	billboard, err := env.services.Billboards.Create(env.ctx, owner, store.ID, app.BillboardInput{
		Label: "Hero", ImageURL: "https://host/v1/hero.png",
	})
	require.NoError(t, err)
	category, err := env.services.Categories.Create(env.ctx, owner, store.ID, app.CategoryInput{
		Name: "Shirts", BillboardID: billboard.ID,
	})
	require.NoError(t, err)
	color, err := env.services.Colors.Create(env.ctx, owner, store.ID, app.AttributeInput{Name: "Red", Value: "#ff0000"})
	require.NoError(t, err)
	size, err := env.services.Sizes.Create(env.ctx, owner, store.ID, app.AttributeInput{Name: "Medium", Value: "M"})
	require.NoError(t, err)
	env.categoryID, env.colorID, env.sizeID = category.ID, color.ID, size.ID
	return env
}

func (env *testEnv) productInput(urls ...string) app.ProductInput {
	in := app.ProductInput{
		Name:       "Shirt",
		Price:      decimal.RequireFromString("12.50"),
		CategoryID: env.categoryID,
		ColorID:    env.colorID,
		SizeID:     env.sizeID,
	}
	for _, url := range urls {
		in.Images = append(in.Images, app.ImageInput{URL: url})
	}
	return in
}

func validationMessage(t *testing.T, err error) string {
	t.Helper()
	var verr *app.ValidationError
	require.True(t, errors.As(err, &verr), "expected validation error, got %v", err)
	return verr.Message
}

func assertNotFound(t *testing.T, err error, resource string) {
	t.Helper()
	var nf *app.NotFoundError
	require.True(t, errors.As(err, &nf), "expected not found, got %v", err)
	assert.Equal(t, resource, nf.Resource)
}

func TestBillboardService(t *testing.T) {
	t.Run("update deletes previous asset", func(t *testing.T) {
		env := newTestEnv(t)
		billboard, err := env.services.Billboards.Create(env.ctx, owner, env.storeID, app.BillboardInput{
			Label: "Old", ImageURL: "https://host/v100/old.png",
		})
		require.NoError(t, err)
		env.assets.On("DeleteAsset", mock.Anything, "old").Return(nil).Once()

		updated, err := env.services.Billboards.Update(env.ctx, owner, env.storeID, billboard.ID, app.BillboardInput{
			Label: "Sale", ImageURL: "https://host/v123/abc.png",
		})
		require.NoError(t, err)
		assert.Equal(t, "Sale", updated.Label)
		env.assets.AssertExpectations(t)
		env.assets.AssertNumberOfCalls(t, "DeleteAsset", 1)

		stored, err := env.services.Billboards.Get(env.ctx, billboard.ID)
		require.NoError(t, err)
		assert.Equal(t, "Sale", stored.Label)
		assert.Equal(t, "https://host/v123/abc.png", stored.ImageURL)
	})

	t.Run("update keeps asset when url is unchanged", func(t *testing.T) {
		env := newTestEnv(t)
		billboard, err := env.services.Billboards.Create(env.ctx, owner, env.storeID, app.BillboardInput{
			Label: "Old", ImageURL: "https://host/v100/same.png",
		})
		require.NoError(t, err)

		_, err = env.services.Billboards.Update(env.ctx, owner, env.storeID, billboard.ID, app.BillboardInput{
			Label: "New", ImageURL: "https://host/v100/same.png",
		})
		require.NoError(t, err)
		env.assets.AssertNotCalled(t, "DeleteAsset", mock.Anything, mock.Anything)
	})

	t.Run("update to a new version of the same asset keeps it", func(t *testing.T) {
		env := newTestEnv(t)
		billboard, err := env.services.Billboards.Create(env.ctx, owner, env.storeID, app.BillboardInput{
			Label: "Banner", ImageURL: "https://host/v100/banner.png",
		})
		require.NoError(t, err)

		_, err = env.services.Billboards.Update(env.ctx, owner, env.storeID, billboard.ID, app.BillboardInput{
			Label: "Banner", ImageURL: "https://host/v200/banner.png",
		})
		require.NoError(t, err)
		env.assets.AssertNotCalled(t, "DeleteAsset", mock.Anything, mock.Anything)

		stored, err := env.services.Billboards.Get(env.ctx, billboard.ID)
		require.NoError(t, err)
		assert.Equal(t, "https://host/v200/banner.png", stored.ImageURL)
	})

	t.Run("update is persisted when the caller cancels during cleanup", func(t *testing.T) {
		env := newTestEnv(t)
		billboard, err := env.services.Billboards.Create(env.ctx, owner, env.storeID, app.BillboardInput{
			Label: "Old", ImageURL: "https://host/v1/old.png",
		})
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(env.ctx)
		defer cancel()
		env.assets.On("DeleteAsset", mock.Anything, "old").Run(func(mock.Arguments) { cancel() }).Return(nil).Once()

		_, err = env.services.Billboards.Update(ctx, owner, env.storeID, billboard.ID, app.BillboardInput{
			Label: "New", ImageURL: "https://host/v2/new.png",
		})
		require.NoError(t, err)
		env.assets.AssertExpectations(t)

		stored, err := env.services.Billboards.Get(env.ctx, billboard.ID)
		require.NoError(t, err)
		assert.Equal(t, "https://host/v2/new.png", stored.ImageURL)
	})

	t.Run("delete is persisted when the caller cancels during cleanup", func(t *testing.T) {
		env := newTestEnv(t)
		billboard, err := env.services.Billboards.Create(env.ctx, owner, env.storeID, app.BillboardInput{
			Label: "Old", ImageURL: "https://host/v1/old.png",
		})
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(env.ctx)
		defer cancel()
		env.assets.On("DeleteAsset", mock.Anything, "old").Run(func(mock.Arguments) { cancel() }).Return(nil).Once()

		_, err = env.services.Billboards.Delete(ctx, owner, env.storeID, billboard.ID)
		require.NoError(t, err)

		_, err = env.services.Billboards.Get(env.ctx, billboard.ID)
		assertNotFound(t, err, "Billboard")
	})

	t.Run("delete with unmatched url still removes record", func(t *testing.T) {
		env := newTestEnv(t)
		billboard, err := env.services.Billboards.Create(env.ctx, owner, env.storeID, app.BillboardInput{
			Label: "Plain", ImageURL: "https://host/images/plain.png",
		})
		require.NoError(t, err)

		_, err = env.services.Billboards.Delete(env.ctx, owner, env.storeID, billboard.ID)
		require.NoError(t, err)
		env.assets.AssertNotCalled(t, "DeleteAsset", mock.Anything, mock.Anything)

		_, err = env.services.Billboards.Get(env.ctx, billboard.ID)
		assertNotFound(t, err, "Billboard")
	})

	t.Run("delete survives asset failure", func(t *testing.T) {
		env := newTestEnv(t)
		billboard, err := env.services.Billboards.Create(env.ctx, owner, env.storeID, app.BillboardInput{
			Label: "Broken", ImageURL: "https://host/v9/broken.png",
		})
		require.NoError(t, err)
		env.assets.On("DeleteAsset", mock.Anything, "broken").Return(errors.New("asset host down")).Once()

		_, err = env.services.Billboards.Delete(env.ctx, owner, env.storeID, billboard.ID)
		require.NoError(t, err)
		env.assets.AssertExpectations(t)

		_, err = env.services.Billboards.Get(env.ctx, billboard.ID)
		assertNotFound(t, err, "Billboard")
	})

	t.Run("non owner is rejected without mutation", func(t *testing.T) {
		env := newTestEnv(t)
		billboard, err := env.services.Billboards.Create(env.ctx, owner, env.storeID, app.BillboardInput{
			Label: "Mine", ImageURL: "https://host/v1/mine.png",
		})
		require.NoError(t, err)

		_, err = env.services.Billboards.Update(env.ctx, stranger, env.storeID, billboard.ID, app.BillboardInput{
			Label: "Theirs", ImageURL: "https://host/v2/theirs.png",
		})
		assert.ErrorIs(t, err, app.ErrUnauthorized)
		_, err = env.services.Billboards.Delete(env.ctx, stranger, env.storeID, billboard.ID)
		assert.ErrorIs(t, err, app.ErrUnauthorized)

		stored, err := env.services.Billboards.Get(env.ctx, billboard.ID)
		require.NoError(t, err)
		assert.Equal(t, "Mine", stored.Label)
		env.assets.AssertNotCalled(t, "DeleteAsset", mock.Anything, mock.Anything)
	})

	t.Run("missing billboard is not found without asset calls", func(t *testing.T) {
		env := newTestEnv(t)
		_, err := env.services.Billboards.Update(env.ctx, owner, env.storeID, "missing", app.BillboardInput{
			Label: "x", ImageURL: "https://host/v1/x.png",
		})
		assertNotFound(t, err, "Billboard")
		_, err = env.services.Billboards.Delete(env.ctx, owner, env.storeID, "missing")
		assertNotFound(t, err, "Billboard")
		env.assets.AssertNotCalled(t, "DeleteAsset", mock.Anything, mock.Anything)
	})

	t.Run("validation order", func(t *testing.T) {
		env := newTestEnv(t)
		_, err := env.services.Billboards.Update(env.ctx, "", env.storeID, "b1", app.BillboardInput{})
		assert.ErrorIs(t, err, app.ErrUnauthenticated)

		_, err = env.services.Billboards.Update(env.ctx, owner, env.storeID, "", app.BillboardInput{})
		assert.Equal(t, "Label is required", validationMessage(t, err))

		_, err = env.services.Billboards.Update(env.ctx, owner, env.storeID, "", app.BillboardInput{Label: "x"})
		assert.Equal(t, "Image URL is required", validationMessage(t, err))

		_, err = env.services.Billboards.Update(env.ctx, owner, env.storeID, "", app.BillboardInput{Label: "x", ImageURL: "y"})
		assert.Equal(t, "Billboard id is required", validationMessage(t, err))

		_, err = env.services.Billboards.Get(env.ctx, "")
		assert.Equal(t, "Billboard id is required", validationMessage(t, err))
	})

	t.Run("billboard of another store is not found", func(t *testing.T) {
		env := newTestEnv(t)
		other, err := env.services.Stores.Create(env.ctx, owner, app.StoreInput{Name: "Second"})
		require.NoError(t, err)
		billboard, err := env.services.Billboards.Create(env.ctx, owner, other.ID, app.BillboardInput{
			Label: "Other", ImageURL: "https://host/v1/other.png",
		})
		require.NoError(t, err)

		_, err = env.services.Billboards.Delete(env.ctx, owner, env.storeID, billboard.ID)
		assertNotFound(t, err, "Billboard")
	})
}

func TestProductValidationOrder(t *testing.T) {
	env := newTestEnv(t)
	full := env.productInput("https://host/v1/a.png")
	product, err := env.services.Products.Create(env.ctx, owner, env.storeID, full)
	require.NoError(t, err)

	tests := []struct {
		name   string
		modify func(in *app.ProductInput)
		want   string
	}{
		{"everything missing", func(in *app.ProductInput) { *in = app.ProductInput{} }, "Name is required"},
		{"name", func(in *app.ProductInput) { in.Name = "" }, "Name is required"},
		{"images before price", func(in *app.ProductInput) { in.Images = nil; in.Price = decimal.Zero }, "Images are required"},
		{"empty image url", func(in *app.ProductInput) { in.Images = []app.ImageInput{{URL: " "}} }, "Image url is required"},
		{"price before category", func(in *app.ProductInput) { in.Price = decimal.Zero; in.CategoryID = "" }, "Price is required"},
		{"category before color", func(in *app.ProductInput) { in.CategoryID = ""; in.ColorID = "" }, "Category id is required"},
		{"color before size", func(in *app.ProductInput) { in.ColorID = ""; in.SizeID = "" }, "Color id is required"},
		{"size", func(in *app.ProductInput) { in.SizeID = "" }, "Size id is required"},
		{"negative price", func(in *app.ProductInput) { in.Price = decimal.NewFromInt(-1) }, "Price must be positive"},
		{"unknown category", func(in *app.ProductInput) { in.CategoryID = "nope" }, "Category id is invalid"},
		{"unknown color", func(in *app.ProductInput) { in.ColorID = env.sizeID }, "Color id is invalid"},
		{"unknown size", func(in *app.ProductInput) { in.SizeID = env.colorID }, "Size id is invalid"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := env.productInput("https://host/v1/a.png")
			tt.modify(&in)

			_, err := env.services.Products.Update(env.ctx, owner, env.storeID, product.ID, in)
			assert.Equal(t, tt.want, validationMessage(t, err))
			_, err = env.services.Products.Create(env.ctx, owner, env.storeID, in)
			assert.Equal(t, tt.want, validationMessage(t, err))
		})
	}
	env.assets.AssertNotCalled(t, "DeleteAsset", mock.Anything, mock.Anything)
}

func TestProductService(t *testing.T) {
	t.Run("create and read", func(t *testing.T) {
		env := newTestEnv(t)
		created, err := env.services.Products.Create(env.ctx, owner, env.storeID,
			env.productInput("https://host/v1/a.png", "https://host/v1/b.png"))
		require.NoError(t, err)

		got, err := env.services.Products.Get(env.ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "Shirt", got.Name)
		assert.Equal(t, []string{"https://host/v1/a.png", "https://host/v1/b.png"}, got.ImageURLs())
		require.NotNil(t, got.Category)
		assert.Equal(t, "Shirts", got.Category.Name)
		require.NotNil(t, got.Color)
		require.NotNil(t, got.Size)
	})

	t.Run("read missing product", func(t *testing.T) {
		env := newTestEnv(t)
		_, err := env.services.Products.Get(env.ctx, "missing")
		assertNotFound(t, err, "Product")

		_, err = env.services.Products.Get(env.ctx, "")
		assert.Equal(t, "Product id is required", validationMessage(t, err))
	})

	t.Run("delete attempts every image and continues past failures", func(t *testing.T) {
		env := newTestEnv(t)
		product, err := env.services.Products.Create(env.ctx, owner, env.storeID,
			env.productInput("https://host/v1/a.png", "https://host/nope.png", "https://host/v2/b.png", "https://host/v3/c.png"))
		require.NoError(t, err)
		env.assets.On("DeleteAsset", mock.Anything, "a").Return(nil).Once()
		env.assets.On("DeleteAsset", mock.Anything, "b").Return(errors.New("boom")).Once()
		env.assets.On("DeleteAsset", mock.Anything, "c").Return(nil).Once()

		deleted, err := env.services.Products.Delete(env.ctx, owner, env.storeID, product.ID)
		require.NoError(t, err)
		assert.Equal(t, product.ID, deleted.ID)
		env.assets.AssertExpectations(t)
		env.assets.AssertNumberOfCalls(t, "DeleteAsset", 3)

		_, err = env.services.Products.Get(env.ctx, product.ID)
		assertNotFound(t, err, "Product")
		urls, err := env.repo.ListStoreImageURLs(env.ctx, env.storeID)
		require.NoError(t, err)
		assert.Empty(t, urls)
	})

	t.Run("update replaces images and removes dropped assets", func(t *testing.T) {
		env := newTestEnv(t)
		product, err := env.services.Products.Create(env.ctx, owner, env.storeID,
			env.productInput("https://host/v1/keep.png", "https://host/v1/drop.png"))
		require.NoError(t, err)
		env.assets.On("DeleteAsset", mock.Anything, "drop").Return(nil).Once()

		in := env.productInput("https://host/v1/keep.png", "https://host/v2/new.png")
		in.Name = "Renamed"
		in.IsFeatured = true
		updated, err := env.services.Products.Update(env.ctx, owner, env.storeID, product.ID, in)
		require.NoError(t, err)
		env.assets.AssertExpectations(t)
		env.assets.AssertNumberOfCalls(t, "DeleteAsset", 1)

		assert.Equal(t, "Renamed", updated.Name)
		assert.True(t, updated.IsFeatured)
		assert.Equal(t, []string{"https://host/v1/keep.png", "https://host/v2/new.png"}, updated.ImageURLs())
	})

	t.Run("update to a new version of the same image keeps the asset", func(t *testing.T) {
		env := newTestEnv(t)
		product, err := env.services.Products.Create(env.ctx, owner, env.storeID,
			env.productInput("https://host/v1/shirt.png"))
		require.NoError(t, err)

		updated, err := env.services.Products.Update(env.ctx, owner, env.storeID, product.ID,
			env.productInput("https://host/v2/shirt.png"))
		require.NoError(t, err)
		env.assets.AssertNotCalled(t, "DeleteAsset", mock.Anything, mock.Anything)
		assert.Equal(t, []string{"https://host/v2/shirt.png"}, updated.ImageURLs())
	})

	t.Run("update is persisted when the caller cancels during cleanup", func(t *testing.T) {
		env := newTestEnv(t)
		product, err := env.services.Products.Create(env.ctx, owner, env.storeID,
			env.productInput("https://host/v1/old.png"))
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(env.ctx)
		defer cancel()
		env.assets.On("DeleteAsset", mock.Anything, "old").Run(func(mock.Arguments) { cancel() }).Return(nil).Once()

		updated, err := env.services.Products.Update(ctx, owner, env.storeID, product.ID,
			env.productInput("https://host/v1/new.png"))
		require.NoError(t, err)
		assert.Equal(t, []string{"https://host/v1/new.png"}, updated.ImageURLs())

		stored, err := env.services.Products.Get(env.ctx, product.ID)
		require.NoError(t, err)
		assert.Equal(t, []string{"https://host/v1/new.png"}, stored.ImageURLs())
	})

	t.Run("delete is persisted when the caller cancels during cleanup", func(t *testing.T) {
		env := newTestEnv(t)
		product, err := env.services.Products.Create(env.ctx, owner, env.storeID,
			env.productInput("https://host/v1/old.png"))
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(env.ctx)
		defer cancel()
		env.assets.On("DeleteAsset", mock.Anything, "old").Run(func(mock.Arguments) { cancel() }).Return(nil).Once()

		_, err = env.services.Products.Delete(ctx, owner, env.storeID, product.ID)
		require.NoError(t, err)

		_, err = env.services.Products.Get(env.ctx, product.ID)
		assertNotFound(t, err, "Product")
	})

	t.Run("non owner is rejected without mutation", func(t *testing.T) {
		env := newTestEnv(t)
		product, err := env.services.Products.Create(env.ctx, owner, env.storeID, env.productInput("https://host/v1/a.png"))
		require.NoError(t, err)

		in := env.productInput("https://host/v1/z.png")
		in.Name = "Stolen"
		_, err = env.services.Products.Update(env.ctx, stranger, env.storeID, product.ID, in)
		assert.ErrorIs(t, err, app.ErrUnauthorized)
		_, err = env.services.Products.Delete(env.ctx, stranger, env.storeID, product.ID)
		assert.ErrorIs(t, err, app.ErrUnauthorized)

		stored, err := env.services.Products.Get(env.ctx, product.ID)
		require.NoError(t, err)
		assert.Equal(t, "Shirt", stored.Name)
		env.assets.AssertNotCalled(t, "DeleteAsset", mock.Anything, mock.Anything)
	})

	t.Run("missing product is not found without asset calls", func(t *testing.T) {
		env := newTestEnv(t)
		_, err := env.services.Products.Update(env.ctx, owner, env.storeID, "missing", env.productInput("https://host/v1/a.png"))
		assertNotFound(t, err, "Product")
		_, err = env.services.Products.Delete(env.ctx, owner, env.storeID, "missing")
		assertNotFound(t, err, "Product")
		env.assets.AssertNotCalled(t, "DeleteAsset", mock.Anything, mock.Anything)
	})

	t.Run("list hides archived products", func(t *testing.T) {
		env := newTestEnv(t)
		_, err := env.services.Products.Create(env.ctx, owner, env.storeID, env.productInput("https://host/v1/a.png"))
		require.NoError(t, err)
		archived := env.productInput("https://host/v1/b.png")
		archived.IsArchived = true
		_, err = env.services.Products.Create(env.ctx, owner, env.storeID, archived)
		require.NoError(t, err)

		products, err := env.services.Products.List(env.ctx, env.storeID, app.ProductFilter{})
		require.NoError(t, err)
		assert.Len(t, products, 1)

		_, err = env.services.Products.List(env.ctx, "", app.ProductFilter{})
		assert.Equal(t, "Store id is required", validationMessage(t, err))
	})
}

func TestStoreService(t *testing.T) {
	t.Run("list and rename", func(t *testing.T) {
		env := newTestEnv(t)
		stores, err := env.services.Stores.List(env.ctx, owner)
		require.NoError(t, err)
		require.Len(t, stores, 1)

		renamed, err := env.services.Stores.Rename(env.ctx, owner, env.storeID, app.StoreInput{Name: "Outlet"})
		require.NoError(t, err)
		assert.Equal(t, "Outlet", renamed.Name)

		_, err = env.services.Stores.Rename(env.ctx, stranger, env.storeID, app.StoreInput{Name: "Mine now"})
		assert.ErrorIs(t, err, app.ErrUnauthorized)

		_, err = env.services.Stores.Create(env.ctx, "", app.StoreInput{Name: "x"})
		assert.ErrorIs(t, err, app.ErrUnauthenticated)
		_, err = env.services.Stores.Create(env.ctx, owner, app.StoreInput{})
		assert.Equal(t, "Name is required", validationMessage(t, err))
	})

	t.Run("delete removes every asset and child", func(t *testing.T) {
		env := newTestEnv(t)
		product, err := env.services.Products.Create(env.ctx, owner, env.storeID,
			env.productInput("https://host/v1/p1.png", "https://host/v1/p2.png"))
		require.NoError(t, err)
		env.assets.On("DeleteAsset", mock.Anything, mock.Anything).Return(nil)

		_, err = env.services.Stores.Delete(env.ctx, owner, env.storeID)
		require.NoError(t, err)
		env.assets.AssertCalled(t, "DeleteAsset", mock.Anything, "hero")
		env.assets.AssertCalled(t, "DeleteAsset", mock.Anything, "p1")
		env.assets.AssertCalled(t, "DeleteAsset", mock.Anything, "p2")

		_, err = env.services.Products.Get(env.ctx, product.ID)
		assertNotFound(t, err, "Product")
		_, err = env.services.Stores.Get(env.ctx, owner, env.storeID)
		assert.ErrorIs(t, err, app.ErrUnauthorized)
	})

	t.Run("delete is persisted when the caller cancels during cleanup", func(t *testing.T) {
		env := newTestEnv(t)
		ctx, cancel := context.WithCancel(env.ctx)
		defer cancel()
		env.assets.On("DeleteAsset", mock.Anything, "hero").Run(func(mock.Arguments) { cancel() }).Return(nil).Once()

		_, err := env.services.Stores.Delete(ctx, owner, env.storeID)
		require.NoError(t, err)
		env.assets.AssertExpectations(t)

		_, err = env.repo.GetStore(env.ctx, env.storeID)
		assert.ErrorIs(t, err, app.ErrNoRecord)
	})
}

func TestCategoryAndAttributeServices(t *testing.T) {
	env := newTestEnv(t)

	t.Run("category requires billboard of the store", func(t *testing.T) {
		_, err := env.services.Categories.Create(env.ctx, owner, env.storeID, app.CategoryInput{Name: "Hats"})
		assert.Equal(t, "Billboard id is required", validationMessage(t, err))

		_, err = env.services.Categories.Create(env.ctx, owner, env.storeID, app.CategoryInput{Name: "Hats", BillboardID: "nope"})
		assert.Equal(t, "Billboard id is invalid", validationMessage(t, err))
	})

	t.Run("category update", func(t *testing.T) {
		category, err := env.services.Categories.Get(env.ctx, env.categoryID)
		require.NoError(t, err)
		updated, err := env.services.Categories.Update(env.ctx, owner, env.storeID, category.ID,
			app.CategoryInput{Name: "Tops", BillboardID: category.BillboardID})
		require.NoError(t, err)
		assert.Equal(t, "Tops", updated.Name)

		categories, err := env.services.Categories.List(env.ctx, env.storeID)
		require.NoError(t, err)
		require.Len(t, categories, 1)
		assert.Equal(t, "Tops", categories[0].Name)
	})

	t.Run("colors and sizes", func(t *testing.T) {
		assert.Equal(t, app.AttributeColor, env.services.Colors.Kind())
		_, err := env.services.Colors.Create(env.ctx, owner, env.storeID, app.AttributeInput{Name: "Blue"})
		assert.Equal(t, "Value is required", validationMessage(t, err))

		_, err = env.services.Sizes.Get(env.ctx, env.colorID)
		assertNotFound(t, err, "Size")

		_, err = env.services.Sizes.Update(env.ctx, stranger, env.storeID, env.sizeID, app.AttributeInput{Name: "L", Value: "L"})
		assert.ErrorIs(t, err, app.ErrUnauthorized)

		created, err := env.services.Sizes.Create(env.ctx, owner, env.storeID, app.AttributeInput{Name: "Large", Value: "L"})
		require.NoError(t, err)
		deleted, err := env.services.Sizes.Delete(env.ctx, owner, env.storeID, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "Large", deleted.Name)

		sizes, err := env.services.Sizes.List(env.ctx, env.storeID)
		require.NoError(t, err)
		assert.Len(t, sizes, 1)
	})
}
