package seed

import "github.com/mkazakov/shopdata/internal/models"

// Catalog is the fixed demo product set the dashboard was built around.
func Catalog() []models.Product {
	return []models.Product{
		{ID: 1, Name: "Wireless Mouse", Category: "Electronics", Price: 25.99, Stock: 120},
		{ID: 2, Name: "Mechanical Keyboard", Category: "Electronics", Price: 89.99, Stock: 75},
		{ID: 3, Name: "USB-C Charger", Category: "Electronics", Price: 15.99, Stock: 200},
		{ID: 4, Name: "Laptop Stand", Category: "Office", Price: 34.99, Stock: 50},
		{ID: 5, Name: "Noise-Canceling Headphones", Category: "Electronics", Price: 129.99, Stock: 30},
		{ID: 6, Name: "Yoga Mat", Category: "Fitness", Price: 22.99, Stock: 80},
		{ID: 7, Name: "Running Shoes", Category: "Footwear", Price: 55.99, Stock: 60},
		{ID: 8, Name: "Bluetooth Speaker", Category: "Electronics", Price: 49.99, Stock: 90},
		{ID: 9, Name: "Smartwatch", Category: "Wearable Tech", Price: 199.99, Stock: 40},
		{ID: 10, Name: "Gaming Chair", Category: "Furniture", Price: 189.99, Stock: 20},
		{ID: 11, Name: "Coffee Maker", Category: "Kitchen", Price: 79.99, Stock: 110},
		{ID: 12, Name: "Air Fryer", Category: "Kitchen", Price: 99.99, Stock: 50},
		{ID: 13, Name: "LED Desk Lamp", Category: "Office", Price: 27.99, Stock: 85},
		{ID: 14, Name: "Power Bank 20000mAh", Category: "Electronics", Price: 39.99, Stock: 150},
		{ID: 15, Name: "DSLR Camera", Category: "Photography", Price: 549.99, Stock: 15},
		{ID: 16, Name: "Hiking Backpack", Category: "Outdoor", Price: 64.99, Stock: 40},
		{ID: 17, Name: "Adjustable Dumbbells", Category: "Fitness", Price: 129.99, Stock: 35},
		{ID: 18, Name: "Graphic Tablet", Category: "Electronics", Price: 219.99, Stock: 25},
		{ID: 19, Name: "4K Monitor", Category: "Electronics", Price: 299.99, Stock: 30},
		{ID: 20, Name: "VR Headset", Category: "Gaming", Price: 399.99, Stock: 10},
		{ID: 21, Name: "Electric Toothbrush", Category: "Personal Care", Price: 49.99, Stock: 95},
		{ID: 22, Name: "Beard Trimmer", Category: "Personal Care", Price: 29.99, Stock: 120},
		{ID: 23, Name: "Smart Light Bulb", Category: "Home Automation", Price: 19.99, Stock: 140},
		{ID: 24, Name: "Home Security Camera", Category: "Home Automation", Price: 89.99, Stock: 55},
		{ID: 25, Name: "Portable Projector", Category: "Electronics", Price: 249.99, Stock: 20},
	}
}
