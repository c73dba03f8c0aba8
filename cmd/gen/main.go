package main

import (
	"folio/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.UserModel{},
		model.ProfileModel{},
		model.ProductModel{},
		model.OrderModel{},
		model.PortfolioModel{},
		model.AnalysisModel{},
		model.WebhookEventModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
