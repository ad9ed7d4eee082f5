package main

import (
	"bytes"
	"os"

	"acp/internal/domain/entity"
	"acp/internal/errors"
	"acp/internal/infra/json"
	"acp/internal/util"
)

// catalogFile is a parsed catalog export.
type catalogFile struct {
	Products []*entity.Product
	Shop     *entity.Shop
	Checksum string
	Size     int64
}

// loadCatalog reads either a bare product array or a {products, shop} object.
func loadCatalog(path string) (*catalogFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read catalog %s", path)
	}

	catalog := &catalogFile{Checksum: util.Checksum(data), Size: int64(len(data))}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, errors.Errorf("catalog %s is empty", path)
	}

	if trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &catalog.Products); err != nil {
			return nil, errors.Wrapf(err, "parse product array in %s", path)
		}
	} else {
		var doc struct {
			Products []*entity.Product `json:"products"`
			Shop     *entity.Shop      `json:"shop"`
		}
		if err := json.Unmarshal(trimmed, &doc); err != nil {
			return nil, errors.Wrapf(err, "parse catalog in %s", path)
		}
		catalog.Products = doc.Products
		catalog.Shop = doc.Shop
	}

	for i, p := range catalog.Products {
		if p == nil {
			return nil, errors.Errorf("catalog %s: products[%d] is null", path, i)
		}
	}

	return catalog, nil
}

func loadShop(path string) (*entity.Shop, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read shop %s", path)
	}

	var shop entity.Shop
	if err := json.Unmarshal(data, &shop); err != nil {
		return nil, errors.Wrapf(err, "parse shop in %s", path)
	}

	return &shop, nil
}
