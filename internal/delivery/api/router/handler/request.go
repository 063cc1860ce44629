package handler

import (
	"io"
	"net/http"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/labstack/echo/v4"
)

// ProductSnapshot is the product as the presentation layer shows it when adding to the cart
// or wishlist.
type ProductSnapshot struct {
	ID    string `json:"id" validate:"required"`
	Name  string `json:"name" validate:"required"`
	Price int64  `json:"price" validate:"gte=0"`
	Image string `json:"image"`
}

func (p ProductSnapshot) toProduct() entity.Product {
	return entity.Product{ID: p.ID, Name: p.Name, Price: p.Price, ImageURL: p.Image}
}

func (p ProductSnapshot) toWishlistItem() entity.WishlistItem {
	return entity.WishlistItem{ID: p.ID, Name: p.Name, Price: p.Price, Image: p.Image}
}

// bindAndValidate binds the request body and runs the echo validator.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return err
	}

	return c.Validate(req)
}

// readUpload reads a multipart file field. A missing field yields nil, not an error.
func readUpload(c echo.Context, field string) (*entity.FileUpload, error) {
	header, err := c.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read form file %s", field)
	}

	f, err := header.Open()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open form file %s", field)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read form file %s", field)
	}

	return &entity.FileUpload{
		Filename:    header.Filename,
		ContentType: header.Header.Get(echo.HeaderContentType),
		Data:        data,
	}, nil
}
