package scrape

import (
	"github.com/pricescout/pricescout/internal/catalog"
)

// SeedCandidates returns the built-in demo dataset. The real store sources
// are frequently blocked, so local environments bootstrap the catalog from
// this set instead; it deliberately lists the same product at several stores
// so price comparison has something to chew on.
func SeedCandidates() []catalog.Candidate {
	return []catalog.Candidate{
		// Phones
		{Name: "iPhone 15 Pro 128GB", Price: 999.99, Store: "Apple", Link: "https://www.apple.com/shop/buy-iphone/iphone-15-pro", Image: "https://via.placeholder.com/300x300?text=iPhone+15+Pro", Category: "Phones", Description: "Latest iPhone with A17 Pro chip and advanced camera system", Rating: 4.8, Availability: catalog.AvailabilityInStock},
		{Name: "iPhone 15 Pro 128GB", Price: 949.99, Store: "Amazon", Link: "https://www.amazon.com/Apple-iPhone-15-Pro-128GB/dp/B0CHXFQSW9", Image: "https://via.placeholder.com/300x300?text=iPhone+15+Pro", Category: "Phones", Description: "Latest iPhone with A17 Pro chip and advanced camera system", Rating: 4.7, Availability: catalog.AvailabilityInStock},
		{Name: "iPhone 15 Pro 128GB", Price: 959.99, Store: "BestBuy", Link: "https://www.bestbuy.com/site/6549393.p", Image: "https://via.placeholder.com/300x300?text=iPhone+15+Pro", Category: "Phones", Description: "Latest iPhone with A17 Pro chip and advanced camera system", Rating: 4.6, Availability: catalog.AvailabilityInStock},
		{Name: "Samsung Galaxy S24 Ultra", Price: 1299.99, Store: "Amazon", Link: "https://www.amazon.com/Samsung-Galaxy-S24-Ultra/dp/B0CQKQ7Q9Z", Image: "https://via.placeholder.com/300x300?text=Galaxy+S24+Ultra", Category: "Phones", Description: "Premium Android flagship with Snapdragon 8 Gen 3", Rating: 4.7, Availability: catalog.AvailabilityInStock},
		{Name: "Samsung Galaxy S24 Ultra", Price: 1279.99, Store: "BestBuy", Link: "https://www.bestbuy.com/site/6549394.p", Image: "https://via.placeholder.com/300x300?text=Galaxy+S24+Ultra", Category: "Phones", Description: "Premium Android flagship with Snapdragon 8 Gen 3", Rating: 4.6, Availability: catalog.AvailabilityInStock},
		{Name: "Google Pixel 8 Pro", Price: 999.00, Store: "Google Store", Link: "https://store.google.com/us/product/pixel_8_pro", Image: "https://via.placeholder.com/300x300?text=Pixel+8+Pro", Category: "Phones", Description: "Google's flagship with advanced AI features", Rating: 4.5, Availability: catalog.AvailabilityInStock},
		{Name: "OnePlus 12", Price: 799.99, Store: "Amazon", Link: "https://www.amazon.com/OnePlus-12/dp/B0CQKQ7Q9Z", Image: "https://via.placeholder.com/300x300?text=OnePlus+12", Category: "Phones", Description: "Fast performance with Snapdragon 8 Gen 3", Rating: 4.4, Availability: catalog.AvailabilityInStock},

		// Laptops
		{Name: `MacBook Pro 16" M3 Max`, Price: 3499.00, Store: "Apple", Link: "https://www.apple.com/macbook-pro/", Image: "https://via.placeholder.com/300x300?text=MacBook+Pro+16", Category: "Laptops", Description: "Powerful laptop for professionals with M3 Max chip", Rating: 4.9, Availability: catalog.AvailabilityInStock},
		{Name: `MacBook Pro 16" M3 Max`, Price: 3449.00, Store: "Amazon", Link: "https://www.amazon.com/Apple-MacBook-16-inch-M3-Max/dp/B0CQKQ7Q9Z", Image: "https://via.placeholder.com/300x300?text=MacBook+Pro+16", Category: "Laptops", Description: "Powerful laptop for professionals with M3 Max chip", Rating: 4.8, Availability: catalog.AvailabilityInStock},
		{Name: "Dell XPS 15", Price: 1999.99, Store: "Dell", Link: "https://www.dell.com/en-us/shop/laptops/xps-15", Image: "https://via.placeholder.com/300x300?text=Dell+XPS+15", Category: "Laptops", Description: "Premium Windows laptop with Intel Core i9", Rating: 4.6, Availability: catalog.AvailabilityInStock},
		{Name: "Dell XPS 15", Price: 1949.99, Store: "Amazon", Link: "https://www.amazon.com/Dell-XPS-15/dp/B0CQKQ7Q9Z", Image: "https://via.placeholder.com/300x300?text=Dell+XPS+15", Category: "Laptops", Description: "Premium Windows laptop with Intel Core i9", Rating: 4.5, Availability: catalog.AvailabilityInStock},
		{Name: "Lenovo ThinkPad X1 Carbon", Price: 1799.99, Store: "Lenovo", Link: "https://www.lenovo.com/us/en/p/laptops/thinkpad/thinkpadx1/x1-carbon", Image: "https://via.placeholder.com/300x300?text=ThinkPad+X1", Category: "Laptops", Description: "Business laptop with excellent keyboard and build quality", Rating: 4.7, Availability: catalog.AvailabilityInStock},
		{Name: "ASUS ROG Zephyrus G16", Price: 2499.99, Store: "Amazon", Link: "https://www.amazon.com/ASUS-ROG-Zephyrus-G16/dp/B0CQKQ7Q9Z", Image: "https://via.placeholder.com/300x300?text=ASUS+ROG+G16", Category: "Laptops", Description: "Gaming laptop with RTX 4090 and 240Hz display", Rating: 4.8, Availability: catalog.AvailabilityInStock},
		{Name: "HP Spectre x360 16", Price: 1899.99, Store: "BestBuy", Link: "https://www.bestbuy.com/site/6549395.p", Image: "https://via.placeholder.com/300x300?text=HP+Spectre+x360", Category: "Laptops", Description: "Convertible laptop with touchscreen and premium design", Rating: 4.5, Availability: catalog.AvailabilityInStock},

		// Tablets
		{Name: `iPad Pro 12.9" M2`, Price: 1099.00, Store: "Apple", Link: "https://www.apple.com/ipad-pro/", Image: "https://via.placeholder.com/300x300?text=iPad+Pro+12.9", Category: "Tablets", Description: "Powerful tablet with M2 chip and stunning display", Rating: 4.8, Availability: catalog.AvailabilityInStock},
		{Name: `iPad Pro 12.9" M2`, Price: 1049.00, Store: "Amazon", Link: "https://www.amazon.com/Apple-iPad-Pro-12-9/dp/B0CQKQ7Q9Z", Image: "https://via.placeholder.com/300x300?text=iPad+Pro+12.9", Category: "Tablets", Description: "Powerful tablet with M2 chip and stunning display", Rating: 4.7, Availability: catalog.AvailabilityInStock},
		{Name: "Samsung Galaxy Tab S9 Ultra", Price: 1199.99, Store: "Amazon", Link: "https://www.amazon.com/Samsung-Galaxy-Tab-S9-Ultra/dp/B0CQKQ7Q9Z", Image: "https://via.placeholder.com/300x300?text=Galaxy+Tab+S9", Category: "Tablets", Description: "Premium Android tablet with 120Hz AMOLED display", Rating: 4.6, Availability: catalog.AvailabilityInStock},
		{Name: "Microsoft Surface Pro 9", Price: 999.99, Store: "Microsoft Store", Link: "https://www.microsoft.com/en-us/surface/devices/surface-pro-9", Image: "https://via.placeholder.com/300x300?text=Surface+Pro+9", Category: "Tablets", Description: "2-in-1 tablet/laptop with Windows 11", Rating: 4.5, Availability: catalog.AvailabilityInStock},

		// Smartwatches
		{Name: "Apple Watch Series 9", Price: 399.00, Store: "Apple", Link: "https://www.apple.com/apple-watch-series-9/", Image: "https://via.placeholder.com/300x300?text=Apple+Watch+9", Category: "Smartwatches", Description: "Latest Apple Watch with always-on display", Rating: 4.7, Availability: catalog.AvailabilityInStock},
		{Name: "Apple Watch Series 9", Price: 379.00, Store: "Amazon", Link: "https://www.amazon.com/Apple-Watch-Series-9/dp/B0CQKQ7Q9Z", Image: "https://via.placeholder.com/300x300?text=Apple+Watch+9", Category: "Smartwatches", Description: "Latest Apple Watch with always-on display", Rating: 4.6, Availability: catalog.AvailabilityInStock},
		{Name: "Samsung Galaxy Watch 6 Classic", Price: 399.99, Store: "Amazon", Link: "https://www.amazon.com/Samsung-Galaxy-Watch-6-Classic/dp/B0CQKQ7Q9Z", Image: "https://via.placeholder.com/300x300?text=Galaxy+Watch+6", Category: "Smartwatches", Description: "Premium smartwatch with rotating bezel", Rating: 4.5, Availability: catalog.AvailabilityInStock},
		{Name: "Garmin Epix Gen 2", Price: 799.99, Store: "Amazon", Link: "https://www.amazon.com/Garmin-Epix-Gen-2/dp/B0CQKQ7Q9Z", Image: "https://via.placeholder.com/300x300?text=Garmin+Epix", Category: "Smartwatches", Description: "Premium sports watch with AMOLED display", Rating: 4.8, Availability: catalog.AvailabilityInStock},
	}
}
