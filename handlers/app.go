package handlers

import (
	"go.uber.org/zap"

	"scentshop/catalog"
	"scentshop/kvstore"
	"scentshop/store"
)

// App bundles the dependencies the handlers operate on
type App struct {
	Session    *store.Session
	Catalog    *catalog.Catalog
	Repo       kvstore.Repository
	Logger     *zap.Logger
	UploadsDir string
}
