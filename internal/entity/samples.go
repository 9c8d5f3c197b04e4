package entity

// SampleParcelDocuments is the built-in corpus used by POST /index-sample to
// smoke-test a fresh tenant namespace.
var SampleParcelDocuments = []Document{
	{
		ID:       "doc1",
		Title:    "How to Track Your Parcel",
		Category: "tracking",
		Content:  "Parcel tracking allows customers to monitor their shipment in real-time. Enter your tracking number on the dashboard to see current location, delivery status, and estimated arrival time. Tracking updates are provided at each checkpoint including pickup, transit, and delivery.",
	},
	{
		ID:       "doc2",
		Title:    "Delivery Time Estimates",
		Category: "shipping",
		Content:  "Package delivery times vary by service level: Standard (5-7 business days), Express (2-3 business days), and Same-Day (for local deliveries within the same city). Delivery times exclude weekends and holidays. Remote areas may require additional time.",
	},
	{
		ID:       "doc3",
		Title:    "Creating Shipping Labels",
		Category: "shipping",
		Content:  "To create a shipping label, log into your account and navigate to 'Create Shipment'. Enter recipient address, package dimensions, weight, and select service level. Payment is processed automatically using your saved payment method. The label can be printed or downloaded as PDF.",
	},
	{
		ID:       "doc4",
		Title:    "Missing Package Resolution",
		Category: "support",
		Content:  "If your package shows 'delivered' but you haven't received it, wait 24 hours as it may have been left with a neighbor or in a safe location. Check your delivery confirmation email for specific delivery instructions. If still not found, contact support within 7 days.",
	},
	{
		ID:       "doc5",
		Title:    "International Shipping Guide",
		Category: "international",
		Content:  "International shipping requires customs declaration forms. Prohibited items include firearms, hazardous materials, perishable goods, and certain electronics. Duties and taxes may apply and are typically the recipient's responsibility. Check country-specific restrictions before shipping.",
	},
	{
		ID:       "doc6",
		Title:    "Package Insurance and Claims",
		Category: "insurance",
		Content:  "Package insurance is available for valuable items. Standard coverage includes up to $100 for Express shipments and $50 for Standard. Additional insurance can be purchased at checkout. To file a claim, provide proof of value and photos of damaged items within 14 days of delivery.",
	},
	{
		ID:       "doc7",
		Title:    "Business Account Benefits",
		Category: "business",
		Content:  "Business accounts offer bulk shipping discounts, API integration, monthly billing, and dedicated account management. Features include address book management, shipping analytics, and multi-user support. Apply online with business documentation for approval.",
	},
	{
		ID:       "doc8",
		Title:    "Scheduling Package Pickup",
		Category: "pickup",
		Content:  "Parcel pickup can be scheduled through the app or website. Standard pickup is free for shipments over $50. Same-day pickup requires scheduling before 2 PM. Couriers will collect from your specified address during the chosen time window. Have packages ready and labeled.",
	},
}
