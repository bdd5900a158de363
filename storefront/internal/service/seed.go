package service

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/booktime/storefront/storefront/pkg/response"
)

// Static demo datasets. Ids are generated per process; the session-scoped
// stores only ever see one generation of them.

func seedProducts() []response.Product {
	return []response.Product{
		{
			ID:            uuid.New(),
			Name:          "Classic Spiral Notebook Pack",
			Description:   "Pack of 5 ruled spiral notebooks, 200 pages each",
			Price:         decimal.NewFromInt(850),
			OriginalPrice: decimal.NewFromInt(1000),
			Category:      "Notebooks",
			Image:         "/images/products/spiral-notebooks.jpg",
			Rating:        4.6,
			Reviews:       214,
			InStock:       true,
			Featured:      true,
		},
		{
			ID:            uuid.New(),
			Name:          "Hardcover Composition Book",
			Description:   "A4 hardcover composition book with stitched binding",
			Price:         decimal.NewFromInt(450),
			OriginalPrice: decimal.NewFromInt(450),
			Category:      "Notebooks",
			Image:         "/images/products/composition-book.jpg",
			Rating:        4.3,
			Reviews:       89,
			InStock:       true,
		},
		{
			ID:            uuid.New(),
			Name:          "Premium Gel Pen Set",
			Description:   "12 smooth-writing gel pens in assorted colors",
			Price:         decimal.NewFromInt(650),
			OriginalPrice: decimal.NewFromInt(800),
			Category:      "Pens & Pencils",
			Image:         "/images/products/gel-pens.jpg",
			Rating:        4.8,
			Reviews:       342,
			InStock:       true,
			Featured:      true,
		},
		{
			ID:            uuid.New(),
			Name:          "Mechanical Pencil Duo",
			Description:   "Two 0.5mm mechanical pencils with lead refills",
			Price:         decimal.NewFromInt(380),
			OriginalPrice: decimal.NewFromInt(380),
			Category:      "Pens & Pencils",
			Image:         "/images/products/mechanical-pencils.jpg",
			Rating:        4.1,
			Reviews:       57,
			InStock:       false,
		},
		{
			ID:            uuid.New(),
			Name:          "Watercolor Paint Set",
			Description:   "24-color watercolor set with brushes and palette",
			Price:         decimal.NewFromInt(1500),
			OriginalPrice: decimal.NewFromInt(1850),
			Category:      "Art Supplies",
			Image:         "/images/products/watercolors.jpg",
			Rating:        4.7,
			Reviews:       186,
			InStock:       true,
			Featured:      true,
		},
		{
			ID:            uuid.New(),
			Name:          "Sketchbook A3",
			Description:   "Heavyweight 160gsm sketchbook, 60 sheets",
			Price:         decimal.NewFromInt(1200),
			OriginalPrice: decimal.NewFromInt(1200),
			Category:      "Art Supplies",
			Image:         "/images/products/sketchbook.jpg",
			Rating:        4.4,
			Reviews:       73,
			InStock:       true,
		},
		{
			ID:            uuid.New(),
			Name:          "Ergonomic School Backpack",
			Description:   "Water-resistant backpack with padded laptop sleeve",
			Price:         decimal.NewFromInt(3500),
			OriginalPrice: decimal.NewFromInt(4200),
			Category:      "Backpacks",
			Image:         "/images/products/backpack.jpg",
			Rating:        4.9,
			Reviews:       428,
			InStock:       true,
			Featured:      true,
		},
		{
			ID:            uuid.New(),
			Name:          "Scientific Calculator FX-991",
			Description:   "552-function scientific calculator, board approved",
			Price:         decimal.NewFromInt(4800),
			OriginalPrice: decimal.NewFromInt(4800),
			Category:      "Calculators",
			Image:         "/images/products/calculator.jpg",
			Rating:        4.8,
			Reviews:       511,
			InStock:       true,
		},
		{
			ID:            uuid.New(),
			Name:          "Geometry Box Deluxe",
			Description:   "Metal geometry set with compass, dividers and rulers",
			Price:         decimal.NewFromInt(950),
			OriginalPrice: decimal.NewFromInt(1100),
			Category:      "Calculators",
			Image:         "/images/products/geometry-box.jpg",
			Rating:        4.2,
			Reviews:       95,
			InStock:       true,
		},
		{
			ID:            uuid.New(),
			Name:          "Oxford English Dictionary",
			Description:   "Compact edition dictionary for secondary school",
			Price:         decimal.NewFromInt(2200),
			OriginalPrice: decimal.NewFromInt(2200),
			Category:      "Books",
			Image:         "/images/products/dictionary.jpg",
			Rating:        4.5,
			Reviews:       167,
			InStock:       false,
		},
		{
			ID:            uuid.New(),
			Name:          "World Atlas Illustrated",
			Description:   "Full-color illustrated atlas with updated maps",
			Price:         decimal.NewFromInt(1800),
			OriginalPrice: decimal.NewFromInt(2000),
			Category:      "Books",
			Image:         "/images/products/atlas.jpg",
			Rating:        3.9,
			Reviews:       41,
			InStock:       true,
		},
		{
			ID:            uuid.New(),
			Name:          "Highlighter Pastel Pack",
			Description:   "6 pastel highlighters with chisel tips",
			Price:         decimal.NewFromInt(520),
			OriginalPrice: decimal.NewFromInt(520),
			Category:      "Pens & Pencils",
			Image:         "/images/products/highlighters.jpg",
			Rating:        4.6,
			Reviews:       203,
			InStock:       true,
		},
	}
}

func seedCategories() []response.Category {
	return []response.Category{
		{ID: uuid.New(), Name: "Notebooks", Icon: "📓"},
		{ID: uuid.New(), Name: "Pens & Pencils", Icon: "✏️"},
		{ID: uuid.New(), Name: "Art Supplies", Icon: "🎨"},
		{ID: uuid.New(), Name: "Backpacks", Icon: "🎒"},
		{ID: uuid.New(), Name: "Calculators", Icon: "🧮"},
		{ID: uuid.New(), Name: "Books", Icon: "📚"},
	}
}

func seedStores() []response.Store {
	return []response.Store{
		{
			ID:      uuid.New(),
			Name:    "BookTime Gulberg",
			Address: "24-B Main Boulevard, Gulberg III",
			City:    "Lahore",
			Phone:   "+92 42 3575 1234",
			Hours:   "Mon-Sat 9:00-21:00",
		},
		{
			ID:      uuid.New(),
			Name:    "BookTime Clifton",
			Address: "Shop 12, Ocean Mall, Clifton Block 9",
			City:    "Karachi",
			Phone:   "+92 21 3583 5678",
			Hours:   "Daily 10:00-22:00",
		},
		{
			ID:      uuid.New(),
			Name:    "BookTime Blue Area",
			Address: "Office 3, Jinnah Avenue, Blue Area",
			City:    "Islamabad",
			Phone:   "+92 51 2344 9012",
			Hours:   "Mon-Sat 9:30-20:30",
		},
	}
}

func seedBundles() []response.Bundle {
	return []response.Bundle{
		{
			ID:            uuid.New(),
			Name:          "Primary Starter Bundle",
			Description:   "Everything a primary schooler needs for the new term",
			Grade:         "Grade 1-5",
			Price:         decimal.NewFromInt(2500),
			OriginalPrice: decimal.NewFromInt(3200),
			Items:         []string{"5 notebooks", "Pencil set", "Eraser & sharpener", "Color pencils", "School diary"},
		},
		{
			ID:            uuid.New(),
			Name:          "Secondary Essentials Bundle",
			Description:   "Core supplies for middle and secondary school",
			Grade:         "Grade 6-10",
			Price:         decimal.NewFromInt(4500),
			OriginalPrice: decimal.NewFromInt(5600),
			Items:         []string{"8 notebooks", "Gel pen set", "Geometry box", "Scientific calculator", "Backpack"},
		},
		{
			ID:            uuid.New(),
			Name:          "Art Student Bundle",
			Description:   "For the budding artist, all media covered",
			Grade:         "All grades",
			Price:         decimal.NewFromInt(3800),
			OriginalPrice: decimal.NewFromInt(4700),
			Items:         []string{"Watercolor set", "Sketchbook A3", "Drawing pencils", "Fixative spray", "Canvas board"},
		},
	}
}
