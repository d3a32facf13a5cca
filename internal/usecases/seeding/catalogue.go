package seeding

import "github.com/vfg2006/sales-dashboard-api/internal/domain"

type product struct {
	name      string
	basePrice float64
}

type weighted[T any] struct {
	value  T
	weight float64
}

func demoCatalogue() []product {
	return []product{
		{name: "Ноутбук MacBook Pro", basePrice: 150000},
		{name: "Смартфон iPhone 15", basePrice: 90000},
		{name: "Планшет iPad Air", basePrice: 60000},
		{name: "Наушники AirPods Pro", basePrice: 25000},
		{name: "Умные часы Apple Watch", basePrice: 35000},
		{name: "Клавиатура Magic Keyboard", basePrice: 12000},
		{name: "Мышь MX Master 3", basePrice: 8000},
		{name: "Монитор LG UltraWide", basePrice: 45000},
		{name: "Веб-камера Logitech", basePrice: 15000},
		{name: "Микрофон Blue Yeti", basePrice: 18000},
		{name: "SSD накопитель Samsung", basePrice: 10000},
		{name: "Внешний HDD Seagate", basePrice: 6000},
		{name: "Роутер Wi-Fi 6", basePrice: 8000},
		{name: "Принтер HP LaserJet", basePrice: 20000},
		{name: "Графический планшет Wacom", basePrice: 30000},
	}
}

func quantityWeights() []weighted[int] {
	return []weighted[int]{
		{value: 1, weight: 0.80},
		{value: 2, weight: 0.15},
		{value: 3, weight: 0.05},
	}
}

func statusWeights() []weighted[domain.SaleStatus] {
	return []weighted[domain.SaleStatus]{
		{value: domain.SaleStatusCompleted, weight: 0.75},
		{value: domain.SaleStatusPending, weight: 0.15},
		{value: domain.SaleStatusCancelled, weight: 0.10},
	}
}

// pick sorteia um valor proporcional aos pesos
func pick[T any](r float64, options []weighted[T]) T {
	var total float64
	for _, o := range options {
		total += o.weight
	}

	target := r * total
	for _, o := range options {
		if target < o.weight {
			return o.value
		}
		target -= o.weight
	}

	return options[len(options)-1].value
}
