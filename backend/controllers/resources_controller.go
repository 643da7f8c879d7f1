package controllers

import (
	"wellness/backend/config"
	"wellness/backend/models"
	"wellness/backend/router"
	"wellness/backend/store"
	"wellness/backend/utils"
)

type ResourcesController struct {
	Store *store.Store
	Cfg   *config.Config
}

func NewResourcesController(st *store.Store, cfg *config.Config) *ResourcesController {
	return &ResourcesController{Store: st, Cfg: cfg}
}

// List returns the resource library, optionally filtered by exact category.
func (rc *ResourcesController) List(c *router.Ctx) error {
	db, err := rc.Store.Load()
	if err != nil {
		return utils.InternalServerError(c, "Could not load data")
	}

	category := c.Query("category")
	if category == "" {
		return utils.Data(c, db.Resources)
	}

	filtered := make([]models.CatalogResource, 0)
	for _, resource := range db.Resources {
		if resource.Category == category {
			filtered = append(filtered, resource)
		}
	}
	return utils.Data(c, filtered)
}

// Recent returns the first four resources for the dashboard widget.
func (rc *ResourcesController) Recent(c *router.Ctx) error {
	db, err := rc.Store.Load()
	if err != nil {
		return utils.InternalServerError(c, "Could not load data")
	}

	recent := db.Resources
	if len(recent) > 4 {
		recent = recent[:4]
	}
	return utils.Data(c, recent)
}

// ListAll returns the whole catalog for the admin management view.
func (rc *ResourcesController) ListAll(c *router.Ctx) error {
	db, err := rc.Store.Load()
	if err != nil {
		return utils.InternalServerError(c, "Could not load data")
	}
	return utils.Data(c, db.Resources)
}

func (rc *ResourcesController) Create(c *router.Ctx) error {
	type CreateInput struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Category    string `json:"category"`
		URL         string `json:"url"`
	}

	var input CreateInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	db, err := rc.Store.Load()
	if err != nil {
		return utils.InternalServerError(c, "Could not load data")
	}

	resource := models.CatalogResource{
		ID:          utils.NewID("r"),
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		URL:         input.URL,
	}
	if resource.Category == "" {
		resource.Category = models.CategoryMental
	}
	if resource.URL == "" {
		resource.URL = "#"
	}

	// Newest first
	db.Resources = append([]models.CatalogResource{resource}, db.Resources...)

	if err := rc.Store.Save(db); err != nil {
		return utils.InternalServerError(c, "Could not save data")
	}
	return utils.Created(c, "Resource created.")
}

// Update merges the supplied fields into the matching resource. An absent id
// is a no-op, not an error.
func (rc *ResourcesController) Update(c *router.Ctx) error {
	type UpdateInput struct {
		Title       *string `json:"title"`
		Description *string `json:"description"`
		Category    *string `json:"category"`
		URL         *string `json:"url"`
	}

	var input UpdateInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	db, err := rc.Store.Load()
	if err != nil {
		return utils.InternalServerError(c, "Could not load data")
	}

	id := c.Params("id")
	for i := range db.Resources {
		if db.Resources[i].ID != id {
			continue
		}
		if input.Title != nil {
			db.Resources[i].Title = *input.Title
		}
		if input.Description != nil {
			db.Resources[i].Description = *input.Description
		}
		if input.Category != nil {
			db.Resources[i].Category = *input.Category
		}
		if input.URL != nil {
			db.Resources[i].URL = *input.URL
		}
	}

	if err := rc.Store.Save(db); err != nil {
		return utils.InternalServerError(c, "Could not save data")
	}
	return utils.Message(c, 200, "Resource updated.")
}

func (rc *ResourcesController) Delete(c *router.Ctx) error {
	db, err := rc.Store.Load()
	if err != nil {
		return utils.InternalServerError(c, "Could not load data")
	}

	id := c.Params("id")
	kept := db.Resources[:0]
	for _, resource := range db.Resources {
		if resource.ID != id {
			kept = append(kept, resource)
		}
	}
	db.Resources = kept

	if err := rc.Store.Save(db); err != nil {
		return utils.InternalServerError(c, "Could not save data")
	}
	return utils.Message(c, 200, "Resource deleted.")
}
