// Package seed holds the demo catalog, orders and customers inserted into
// empty tables.
package seed

import (
	"fmt"
	"strings"

	"spi-eshop-be/internal/entity"
)

type productRow struct {
	name, description  string
	price, original    float64
	image              string
	category, fullName string
	subCategory        string
	rating             float64
	reviews, stock     int
}

const (
	cst         = "Computer Science & Technology"
	civil       = "Civil Technology"
	electronics = "Electronics Technology"
	rac         = "Refrigeration and Air Conditioning"
)

var productRows = []productRow{
	{"Arduino Uno R3 Microcontroller", "Essential microcontroller for embedded systems and IoT projects.", 899, 1099, "https://images.unsplash.com/photo-1563770094207-f9d2520ce32c?w=500", "CST", cst, "Computer Components", 4.8, 156, 50},
	{"Raspberry Pi 4 Model B", "Powerful single-board computer for development and prototyping.", 3499, 3999, "https://images.unsplash.com/photo-1517077304055-6e89abbf09b0?w=500", "CST", cst, "Computer Components", 4.9, 234, 30},
	{"Intel Core i7 Processor", "High-performance processor for advanced computing needs.", 24999, 27999, "https://images.unsplash.com/photo-1591799264318-7e6ef8ddbb56?w=500", "CST", cst, "Hardware", 4.7, 89, 20},
	{"16GB DDR4 RAM Module", "High-speed memory module for enhanced system performance.", 3999, 4499, "https://images.unsplash.com/photo-1562976540-5500dd9f2019?w=500", "CST", cst, "Hardware", 4.6, 112, 45},
	{"Visual Studio Code License", "Professional code editor for software development.", 0, 0, "https://images.unsplash.com/photo-1599658880436-125054692c67?w=500", "CST", cst, "Software", 4.9, 500, 999},
	{"DHT22 Temperature & Humidity Sensor", "Digital sensor for environmental monitoring.", 299, 399, "https://images.unsplash.com/photo-1555449382-799054481255?w=500", "CST", cst, "Sensors", 4.6, 89, 100},
	{"Ultrasonic Distance Sensor HC-SR04", "Ultrasonic sensor for distance measurement.", 149, 199, "https://images.unsplash.com/photo-1555449382-799054481255?w=500", "CST", cst, "Sensors", 4.7, 112, 80},
	{"Theodolite Surveying Instrument", "Precision instrument for angle measurement in surveying.", 15999, 18999, "https://images.unsplash.com/photo-1501769214405-5e5ee5125a02?w=500", "Civil", civil, "Surveying Tools", 4.7, 34, 15},
	{"Total Station", "Advanced surveying equipment for accurate measurements.", 89999, 99999, "https://images.unsplash.com/photo-1585241971714-d89047971790?w=500", "Civil", civil, "Surveying Tools", 4.9, 28, 10},
	{"Drafting Board Set", "Professional drafting board for technical drawings.", 2999, 3499, "https://images.unsplash.com/photo-1530962386121-1d54f0a28f86?w=500", "Civil", civil, "Drafting Gear", 4.5, 45, 25},
	{"Technical Drawing Set", "Complete set of drafting tools and instruments.", 899, 1099, "https://images.unsplash.com/photo-1530962386121-1d54f0a28f86?w=500", "Civil", civil, "Drafting Gear", 4.6, 67, 40},
	{"Cement Bag (50kg)", "High-quality cement for construction projects.", 399, 449, "https://images.unsplash.com/photo-1586864388991-fa6fa39f4a55?w=500", "Civil", civil, "Materials", 4.4, 120, 200},
	{"Steel Reinforcement Bars", "Reinforcement bars for concrete structures.", 599, 699, "https://images.unsplash.com/photo-1586864388991-fa6fa39f4a55?w=500", "Civil", civil, "Materials", 4.5, 89, 150},
	{"Digital Multimeter Pro", "An essential tool for electrical circuit analysis and troubleshooting.", 1299, 1599, "https://images.unsplash.com/photo-1581093458791-9f3c3900df4b?w=500", "Electronics", electronics, "Testing Equipment", 4.8, 67, 35},
	{"Oscilloscope 100MHz Digital", "Advanced digital oscilloscope for waveform analysis.", 12999, 14999, "https://images.unsplash.com/photo-1580894742597-df7bc476515f?w=500", "Electronics", electronics, "Testing Equipment", 4.9, 45, 12},
	{"Refrigeration Compressor Unit", "A fundamental component for practical training in RAC systems.", 8999, 10999, "https://images.unsplash.com/photo-1457459686225-c7b4097f5d43?w=500", "RAC", rac, "RAC Components", 4.8, 23, 18},
}

// Products returns fresh copies of the demo catalog with SKUs PROD-001 onwards.
func Products() []*entity.Product {
	out := make([]*entity.Product, 0, len(productRows))
	for i, r := range productRows {
		out = append(out, &entity.Product{
			Sku:           fmt.Sprintf("PROD-%03d", i+1),
			Name:          r.name,
			Description:   r.description,
			Price:         r.price,
			OriginalPrice: r.original,
			Image:         r.image,
			Category:      r.category,
			Department:    r.fullName,
			SubCategory:   r.subCategory,
			Rating:        r.rating,
			Reviews:       r.reviews,
			Stock:         r.stock,
			Status:        entity.StockStatus(r.stock),
			IsActive:      true,
			Tags:          []string{strings.ToLower(r.category), strings.ToLower(r.subCategory)},
		})
	}
	return out
}

func Orders() []*entity.Order {
	return []*entity.Order{
		{Reference: "ORD-001", Customer: "John Doe", Amount: 120.50, Status: entity.OrderCompleted, Date: "2024-03-15", Items: 3},
		{Reference: "ORD-002", Customer: "Jane Smith", Amount: 75.00, Status: entity.OrderPending, Date: "2024-03-16", Items: 1},
		{Reference: "ORD-003", Customer: "Michael Brown", Amount: 250.00, Status: entity.OrderProcessing, Date: "2024-03-16", Items: 5},
		{Reference: "ORD-004", Customer: "Sarah Wilson", Amount: 95.20, Status: entity.OrderCompleted, Date: "2024-03-14", Items: 2},
		{Reference: "ORD-005", Customer: "David Lee", Amount: 110.00, Status: entity.OrderCancelled, Date: "2024-03-13", Items: 1},
	}
}

func Customers() []*entity.Customer {
	return []*entity.Customer{
		{Reference: "CUST-001", Name: "Alice Johnson", Email: "alice@example.com", Role: "Student", Status: "active", JoinDate: "2024-01-15", Orders: 5},
		{Reference: "CUST-002", Name: "Bob Smith", Email: "bob@example.com", Role: "Faculty", Status: "active", JoinDate: "2023-11-20", Orders: 12},
		{Reference: "CUST-003", Name: "Charlie Brown", Email: "charlie@example.com", Role: "Student", Status: "inactive", JoinDate: "2024-02-10", Orders: 0},
	}
}
