// Command larek-api runs the stub storefront backend with a built-in
// catalog. It exists for local development; nothing is persisted.
package main

import (
	"flag"
	"os"

	"github.com/nickovin/weblarek-go/pkg/api"
	"github.com/nickovin/weblarek-go/pkg/logging"
	"github.com/nickovin/weblarek-go/pkg/shop"
)

// fixture mirrors a slice of the production catalog closely enough to
// exercise every storefront path, including a priceless product.
var fixture = []shop.Product{
	{
		ID:          "854cef69-976d-4c2a-a18c-2aa45046c390",
		Title:       "+1 час в сутках",
		Description: "Если планируете решать задачи в тренажёре, берите два.",
		Image:       "/5_Dots.svg",
		Category:    "софт-скил",
		Price:       shop.PriceOf(750),
	},
	{
		ID:          "c101ab44-ed10-4b4b-894c-d289fad7826d",
		Title:       "HEX-леденец",
		Description: "Лизните голову, чтобы увидеть мир глазами разработчика.",
		Image:       "/Shell.svg",
		Category:    "другое",
		Price:       shop.PriceOf(1450),
	},
	{
		ID:          "b06cde61-912f-4663-9751-09956c8a4f88",
		Title:       "Мамка-таймер",
		Description: "Будет стоять над душой и не давать прокрастинировать.",
		Image:       "/Asterisk_2.svg",
		Category:    "софт-скил",
		Price:       nil,
	},
	{
		ID:          "1c521d84-c48d-48fa-8cfb-9d911fa515fd",
		Title:       "Фреймворк куки судьбы",
		Description: "Откройте эти куки, чтобы узнать, какой фреймворк изучать дальше.",
		Image:       "/Soft_Flower.svg",
		Category:    "дополнительное",
		Price:       shop.PriceOf(2500),
	},
	{
		ID:          "f3867296-45c7-4603-bd34-29cea3a061d5",
		Title:       "Кнопка «Заморозка»",
		Description: "Эта кнопка остановит время, но только для раздумий.",
		Image:       "/Polygon.svg",
		Category:    "кнопка",
		Price:       shop.PriceOf(1400),
	},
}

func main() {
	listen := flag.String("listen", ":8081", "listen address")
	flag.Parse()

	logger := logging.New(false)
	stub := api.NewStubServer(fixture, logger)
	if err := stub.Listen(*listen); err != nil {
		logger.Errorf("larek-api: %v", err)
		os.Exit(1)
	}
}
