package memory

import "github.com/smart-jordan/internal/domain"

const (
	imageDesert = "https://images.unsplash.com/photo-1578662996442-48f60103fc96?w=400&h=250&fit=crop"
	imagePetra  = "https://images.unsplash.com/photo-1539650116574-75c0c6d57d8b?w=400&h=250&fit=crop"
)

// Месяцы собираются заново для каждого направления
func monthsCoolSeason() []string {
	return []string{"October", "November", "December", "January", "February", "March", "April"}
}

func monthsShoulder() []string {
	return []string{"March", "April", "May", "September", "October", "November"}
}

// Catalogue - восемь направлений Иордании в порядке показа
func Catalogue() []domain.Destination {
	return []domain.Destination{
		{
			ID:               "petra",
			Name:             "Petra",
			Category:         domain.CategoryHistorical,
			Difficulty:       domain.DifficultyModerate,
			DurationLabel:    "6-8 hours",
			Budget:           domain.BudgetHigh,
			Accessibility:    domain.AccessibilityLimited,
			ShortDescription: "Ancient rose-red city carved into cliffs",
			FullDescription:  "Petra is an archaeological wonder and UNESCO World Heritage Site. This ancient city, carved directly into vibrant red, white, pink, and sandstone cliff faces, was the capital of the Nabataean Kingdom from around the 6th century BC to the 1st century AD.",
			Highlights:       []string{"Treasury (Al-Khazneh)", "Monastery (Ad-Deir)", "Royal Tombs", "Siq Canyon"},
			Tips: []string{
				"Wear comfortable hiking shoes",
				"Bring plenty of water and sun protection",
				"Consider hiring a local guide for deeper insights",
				"Visit during golden hour for best photography",
			},
			Transportation: map[string]string{
				"from_amman":      "Private car (3 hours), Tourist bus (3.5 hours)",
				"from_aqaba":      "Private car (2 hours), Taxi (2 hours)",
				"parking":         "Available at visitor center",
				"local_transport": "Horse rides and donkey rides available inside",
			},
			BestTimeToVisit: domain.BestTimeToVisit{
				Months: []string{"October", "November", "March", "April"},
				Hours:  "Early morning (6AM-9AM) or late afternoon (4PM-6PM)",
				Season: "Spring and Fall for comfortable temperatures",
			},
			AverageRating: 4.7,
			Image:         imagePetra,
			Image360:      imageDesert,
			VirtualTour:   "https://petra-virtual-tour.com",
			Location:      domain.Point{Lat: 30.3285, Lon: 35.4444},
			Weather:       domain.WeatherSnapshot{Temperature: 28, Condition: "Sunny", Humidity: 45, WindSpeed: 12},
			Crowd:         domain.CrowdSnapshot{Level: domain.CrowdHigh, Percentage: 85, BusyHours: []string{"9AM-11AM", "2PM-4PM"}},
		},
		{
			ID:               "wadi-rum",
			Name:             "Wadi Rum",
			Category:         domain.CategoryNature,
			Difficulty:       domain.DifficultyEasy,
			DurationLabel:    "4-6 hours",
			Budget:           domain.BudgetMedium,
			Accessibility:    domain.AccessibilityModerate,
			ShortDescription: "Valley of the Moon desert landscape",
			FullDescription:  "Wadi Rum, also known as the Valley of the Moon, is a protected desert wilderness featuring dramatic sandstone mountains, narrow canyons, and ancient inscriptions. This UNESCO World Heritage Site offers otherworldly landscapes that have served as the backdrop for numerous films.",
			Highlights:       []string{"Lawrence's Spring", "Khazali Canyon", "Sand Dunes", "Rock Bridges"},
			Tips: []string{
				"Book overnight camping for the full experience",
				"Bring warm clothes for desert nights",
				"Don't miss the sunrise and sunset",
				"Try traditional Bedouin cuisine",
			},
			Transportation: map[string]string{
				"from_amman":      "Private car (4 hours), Bus to Aqaba then taxi (5 hours total)",
				"from_aqaba":      "Private car (1 hour), Taxi (1 hour)",
				"parking":         "Available at visitor center",
				"local_transport": "4WD jeep tours, camel rides, hot air balloon rides",
			},
			BestTimeToVisit: domain.BestTimeToVisit{
				Months: monthsCoolSeason(),
				Hours:  "Early morning (sunrise) or late afternoon (sunset)",
				Season: "Winter months for comfortable temperatures",
			},
			AverageRating: 4.8,
			Image:         imageDesert,
			Image360:      imagePetra,
			VirtualTour:   "https://wadi-rum-virtual-tour.com",
			Location:      domain.Point{Lat: 29.5765, Lon: 35.4195},
			Weather:       domain.WeatherSnapshot{Temperature: 32, Condition: "Clear", Humidity: 30, WindSpeed: 18},
			Crowd:         domain.CrowdSnapshot{Level: domain.CrowdMedium, Percentage: 60, BusyHours: []string{"6AM-8AM", "6PM-7PM"}},
		},
		{
			ID:               "dead-sea",
			Name:             "Dead Sea",
			Category:         domain.CategoryNature,
			Difficulty:       domain.DifficultyEasy,
			DurationLabel:    "2-4 hours",
			Budget:           domain.BudgetHigh,
			Accessibility:    domain.AccessibilityGood,
			ShortDescription: "Lowest point on Earth with healing waters",
			FullDescription:  "The Dead Sea is a salt lake bordered by Jordan to the east and Israel to the west. At 430 meters below sea level, it's the lowest point on Earth's surface. The hypersaline water makes floating effortless and is renowned for its therapeutic properties.",
			Highlights:       []string{"Effortless floating", "Mud therapy", "Salt formations", "Spa treatments"},
			Tips: []string{
				"Don't shave before visiting",
				"Avoid getting water in eyes or mouth",
				"Bring fresh water for rinsing",
				"Try the therapeutic mud treatments",
			},
			Transportation: map[string]string{
				"from_amman":      "Private car (1 hour), Bus (1.5 hours)",
				"from_petra":      "Private car (2.5 hours), Tour bus (3 hours)",
				"parking":         "Available at resorts and public beaches",
				"local_transport": "Resort shuttles, private taxis",
			},
			BestTimeToVisit: domain.BestTimeToVisit{
				Months: monthsCoolSeason(),
				Hours:  "Morning (8AM-11AM) or late afternoon (4PM-6PM)",
				Season: "Cooler months to avoid extreme heat",
			},
			AverageRating: 4.6,
			Image:         imageDesert,
			Image360:      imagePetra,
			VirtualTour:   "https://dead-sea-virtual-tour.com",
			Location:      domain.Point{Lat: 31.5590, Lon: 35.4732},
			Weather:       domain.WeatherSnapshot{Temperature: 35, Condition: "Hot", Humidity: 60, WindSpeed: 8},
			Crowd:         domain.CrowdSnapshot{Level: domain.CrowdHigh, Percentage: 75, BusyHours: []string{"10AM-2PM"}},
		},
		{
			ID:               "jerash",
			Name:             "Jerash",
			Category:         domain.CategoryHistorical,
			Difficulty:       domain.DifficultyEasy,
			DurationLabel:    "3-4 hours",
			Budget:           domain.BudgetLow,
			Accessibility:    domain.AccessibilityGood,
			ShortDescription: "Best-preserved Roman ruins outside Italy",
			FullDescription:  "Jerash is home to one of the best-preserved Roman provincial towns in the world. Hidden for centuries under sand, the city has been excavated and restored over 70 years, revealing a remarkable Roman urban planning example.",
			Highlights:       []string{"Hadrian's Arch", "Oval Plaza", "Roman Theatre", "Colonnaded Street"},
			Tips: []string{
				"Hire a guide for detailed historical context",
				"Comfortable walking shoes essential",
				"Visit during the annual festival if possible",
				"Don't miss the sound and light show",
			},
			Transportation: map[string]string{
				"from_amman":      "Private car (1 hour), Bus (1.5 hours)",
				"from_petra":      "Private car (4 hours), Tour bus (4.5 hours)",
				"parking":         "Available at site entrance",
				"local_transport": "Walking tour, horse-drawn carriages",
			},
			BestTimeToVisit: domain.BestTimeToVisit{
				Months: monthsCoolSeason(),
				Hours:  "Morning (8AM-11AM) or late afternoon (3PM-5PM)",
				Season: "Spring and fall for comfortable walking",
			},
			AverageRating: 4.7,
			Image:         imageDesert,
			Image360:      imagePetra,
			VirtualTour:   "https://jerash-virtual-tour.com",
			Location:      domain.Point{Lat: 32.2744, Lon: 35.8961},
			Weather:       domain.WeatherSnapshot{Temperature: 26, Condition: "Partly Cloudy", Humidity: 50, WindSpeed: 10},
			Crowd:         domain.CrowdSnapshot{Level: domain.CrowdLow, Percentage: 35, BusyHours: []string{"11AM-1PM"}},
		},
		{
			ID:               "amman",
			Name:             "Amman",
			Category:         domain.CategoryUrban,
			Difficulty:       domain.DifficultyEasy,
			DurationLabel:    "6-8 hours",
			Budget:           domain.BudgetMedium,
			Accessibility:    domain.AccessibilityExcellent,
			ShortDescription: "Modern capital with ancient history",
			FullDescription:  "Amman is a fascinating city of contrasts, a unique blend of old and new, where ancient traditions meet modern life. The city is built on seven hills and offers a mix of ancient ruins, traditional markets, and modern amenities.",
			Highlights:       []string{"Citadel", "Roman Theatre", "Rainbow Street", "King Abdullah Mosque"},
			Tips: []string{
				"Try traditional Jordanian cuisine",
				"Visit local markets for authentic shopping",
				"Explore both modern and old parts of the city",
				"Use official taxis or ride-sharing apps",
			},
			Transportation: map[string]string{
				"from_petra":      "Private car (3 hours), Bus (3.5 hours)",
				"from_aqaba":      "Private car (4 hours), Flight (1 hour)",
				"parking":         "Available in city center and malls",
				"local_transport": "Taxis, buses, ride-sharing apps",
			},
			BestTimeToVisit: domain.BestTimeToVisit{
				Months: monthsShoulder(),
				Hours:  "All day - city activities",
				Season: "Spring and fall for pleasant weather",
			},
			AverageRating: 4.4,
			Image:         imageDesert,
			Image360:      imagePetra,
			VirtualTour:   "https://amman-virtual-tour.com",
			Location:      domain.Point{Lat: 31.9539, Lon: 35.9106},
			Weather:       domain.WeatherSnapshot{Temperature: 24, Condition: "Cloudy", Humidity: 55, WindSpeed: 15},
			Crowd:         domain.CrowdSnapshot{Level: domain.CrowdMedium, Percentage: 55, BusyHours: []string{"8AM-10AM", "5PM-7PM"}},
		},
		{
			ID:               "aqaba",
			Name:             "Aqaba",
			Category:         domain.CategoryNature,
			Difficulty:       domain.DifficultyEasy,
			DurationLabel:    "4-6 hours",
			Budget:           domain.BudgetMedium,
			Accessibility:    domain.AccessibilityGood,
			ShortDescription: "Red Sea diving and coral reef paradise",
			FullDescription:  "Aqaba is Jordan's window to the sea, offering world-class diving and snorkeling in the Red Sea. The city combines beach relaxation with water sports and serves as the gateway to Wadi Rum desert.",
			Highlights:       []string{"Coral reefs", "Diving spots", "Beach resorts", "Marine life"},
			Tips: []string{
				"Book diving trips in advance",
				"Bring reef-safe sunscreen",
				"Try fresh seafood at local restaurants",
				"Consider combining with Wadi Rum visit",
			},
			Transportation: map[string]string{
				"from_amman":      "Private car (4 hours), Flight (1 hour), Bus (4.5 hours)",
				"from_petra":      "Private car (2 hours), Bus (2.5 hours)",
				"parking":         "Available at hotels and diving centers",
				"local_transport": "Taxis, hotel shuttles, boat trips",
			},
			BestTimeToVisit: domain.BestTimeToVisit{
				Months: monthsCoolSeason(),
				Hours:  "Morning dives (8AM-11AM) or afternoon (2PM-5PM)",
				Season: "Winter months for comfortable temperatures",
			},
			AverageRating: 4.7,
			Image:         imageDesert,
			Image360:      imagePetra,
			VirtualTour:   "https://aqaba-virtual-tour.com",
			Location:      domain.Point{Lat: 29.5320, Lon: 35.0063},
			Weather:       domain.WeatherSnapshot{Temperature: 30, Condition: "Sunny", Humidity: 65, WindSpeed: 20},
			Crowd:         domain.CrowdSnapshot{Level: domain.CrowdMedium, Percentage: 50, BusyHours: []string{"10AM-12PM", "3PM-5PM"}},
		},
		{
			ID:               "mount-nebo",
			Name:             "Mount Nebo",
			Category:         domain.CategoryReligious,
			Difficulty:       domain.DifficultyEasy,
			DurationLabel:    "2-3 hours",
			Budget:           domain.BudgetLow,
			Accessibility:    domain.AccessibilityGood,
			ShortDescription: "Sacred biblical site with panoramic views",
			FullDescription:  "Mount Nebo is a biblical and spiritual site where Moses is said to have viewed the Promised Land before his death. The site offers panoramic views of the Jordan Valley, Dead Sea, and on clear days, Jerusalem.",
			Highlights:       []string{"Moses Memorial", "Byzantine mosaics", "Panoramic views", "Serpentine Cross"},
			Tips: []string{
				"Visit during clear weather for best views",
				"Respect the religious significance of the site",
				"Combine with Madaba mosaic visits",
				"Bring a camera for the stunning vistas",
			},
			Transportation: map[string]string{
				"from_amman":      "Private car (1 hour), Tour bus (1.5 hours)",
				"from_dead_sea":   "Private car (30 minutes), Tour bus (45 minutes)",
				"parking":         "Available at site entrance",
				"local_transport": "Walking paths, guided tours",
			},
			BestTimeToVisit: domain.BestTimeToVisit{
				Months: monthsShoulder(),
				Hours:  "Morning (8AM-11AM) or late afternoon (4PM-6PM)",
				Season: "Spring and fall for clear visibility",
			},
			AverageRating: 4.6,
			Image:         imageDesert,
			Image360:      imagePetra,
			VirtualTour:   "https://mount-nebo-virtual-tour.com",
			Location:      domain.Point{Lat: 31.7680, Lon: 35.7256},
			Weather:       domain.WeatherSnapshot{Temperature: 22, Condition: "Misty", Humidity: 70, WindSpeed: 5},
			Crowd:         domain.CrowdSnapshot{Level: domain.CrowdLow, Percentage: 25, BusyHours: []string{"10AM-12PM"}},
		},
		{
			ID:               "dana-reserve",
			Name:             "Dana Biosphere Reserve",
			Category:         domain.CategoryNature,
			Difficulty:       domain.DifficultyModerate,
			DurationLabel:    "4-8 hours",
			Budget:           domain.BudgetLow,
			Accessibility:    domain.AccessibilityLimited,
			ShortDescription: "Jordan's largest nature reserve",
			FullDescription:  "Dana Biosphere Reserve is Jordan's largest nature reserve, spanning four bio-geographical zones. It's home to diverse wildlife and plant species, offering excellent hiking trails and eco-tourism experiences.",
			Highlights:       []string{"Hiking trails", "Wildlife viewing", "Ancient copper mines", "Traditional villages"},
			Tips: []string{
				"Book eco-lodge accommodation in advance",
				"Bring sturdy hiking boots",
				"Hire local guides for best experience",
				"Respect wildlife and stay on marked trails",
			},
			Transportation: map[string]string{
				"from_amman":      "Private car (3 hours), Bus to Tafila then taxi (4 hours total)",
				"from_petra":      "Private car (1.5 hours), Tour bus (2 hours)",
				"parking":         "Available at visitor center",
				"local_transport": "Hiking trails, guided nature walks",
			},
			BestTimeToVisit: domain.BestTimeToVisit{
				Months: monthsShoulder(),
				Hours:  "Early morning (6AM-10AM) or late afternoon (3PM-6PM)",
				Season: "Spring and fall for wildlife activity",
			},
			AverageRating: 4.8,
			Image:         imageDesert,
			Image360:      imagePetra,
			VirtualTour:   "https://dana-reserve-virtual-tour.com",
			Location:      domain.Point{Lat: 30.6741, Lon: 35.6150},
			Weather:       domain.WeatherSnapshot{Temperature: 18, Condition: "Cool", Humidity: 45, WindSpeed: 12},
			Crowd:         domain.CrowdSnapshot{Level: domain.CrowdLow, Percentage: 20, BusyHours: []string{"8AM-10AM"}},
		},
	}
}
