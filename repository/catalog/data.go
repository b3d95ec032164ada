package catalogrepo

import "github.com/Uday-Kumarr/clickncut-main/model"

// The storefront catalog. Prices are per-day rental rates in rupees.
var products = []model.Product{
	{
		ID:              "1",
		Name:            "Canon EOS R5",
		Description:     "Professional full-frame mirrorless camera with 8K video recording capability.",
		Price:           12500,
		Category:        model.CategoryCamera,
		Image:           "https://images.unsplash.com/photo-1621520291095-aa6c7137f048?q=80&w=1000",
		RentalAvailable: true,
		Features: []string{
			"45MP Full-Frame CMOS Sensor",
			"8K RAW Video Recording",
			"High-Speed Continuous Shooting",
			"In-Body Image Stabilization",
			"Dual Card Slots",
		},
		Stock: 5,
	},
	{
		ID:              "2",
		Name:            "Sony a7S III",
		Description:     "Full-frame mirrorless camera optimized for video and low-light performance.",
		Price:           11000,
		Category:        model.CategoryCamera,
		Image:           "https://images.unsplash.com/photo-1607462109225-6b64ae2dd3cb?q=80&w=1000",
		RentalAvailable: true,
		Features: []string{
			"12.1MP Full-Frame CMOS Sensor",
			"4K 120p Video Recording",
			"16-Bit RAW Output",
			"ISO Range of 40-409600",
			"5-Axis In-Body Image Stabilization",
		},
		Stock: 3,
	},
	{
		ID:              "3",
		Name:            "Canon RF 50mm f/1.2L USM",
		Description:     "Ultra-fast standard prime lens with exceptional image quality.",
		Price:           5200,
		Category:        model.CategoryLens,
		Image:           "https://images.unsplash.com/photo-1525385444278-b7968b2b38fe?q=80&w=1000",
		RentalAvailable: true,
		Features: []string{
			"Extremely fast f/1.2 maximum aperture",
			"Ring-type Ultrasonic Motor (USM)",
			"Customizable Control Ring",
			"Weather-Sealed Construction",
			"Minimum Focus Distance of 0.4m",
		},
		Stock: 8,
	},
	{
		ID:              "4",
		Name:            "DJI Ronin-S",
		Description:     "Professional 3-axis gimbal stabilizer for DSLR and mirrorless cameras.",
		Price:           3600,
		Category:        model.CategoryAccessory,
		Image:           "https://images.unsplash.com/photo-1606134500648-172747cda149?q=80&w=1000",
		RentalAvailable: true,
		Features: []string{
			"8.8 lb Payload Capacity",
			"Single-Handed Operation",
			"Sport Mode for Fast-Moving Subjects",
			"12-Hour Battery Life",
			"Silent Motors",
		},
		Stock: 6,
	},
	{
		ID:              "5",
		Name:            "Adobe Premiere Pro Subscription",
		Description:     "Professional video editing software with comprehensive tools and features.",
		Price:           4000,
		Category:        model.CategoryEditing,
		Image:           "https://images.unsplash.com/photo-1654506905352-cee2bc48862e?q=80&w=1000",
		RentalAvailable: false,
		Features: []string{
			"Multi-Camera Editing",
			"Advanced Color Grading",
			"After Effects Integration",
			"Motion Graphics Templates",
			"VR Editing",
		},
		Stock: model.UnlimitedStock,
	},
	{
		ID:              "6",
		Name:            "Blackmagic Pocket Cinema Camera 6K",
		Description:     "Compact cinema camera with 6K resolution and Super 35 sensor.",
		Price:           9800,
		Category:        model.CategoryCamera,
		Image:           "https://images.unsplash.com/photo-1589038939341-31cc6d6e3140?q=80&w=1000",
		RentalAvailable: true,
		Features: []string{
			"Super 35 Sensor",
			"6K Resolution Recording",
			"13 Stops of Dynamic Range",
			"Dual Native ISO up to 25,600",
			"EF Lens Mount",
		},
		Stock: 4,
	},
	{
		ID:              "7",
		Name:            "DaVinci Resolve Studio",
		Description:     "Professional editing, color correction, visual effects, and audio post-production software.",
		Price:           6500,
		Category:        model.CategoryEditing,
		Image:           "https://images.unsplash.com/photo-1626785774625-9b118f5e8e98?q=80&w=1000",
		RentalAvailable: false,
		Features: []string{
			"Advanced Color Grading Tools",
			"Multi-User Collaboration",
			"Fairlight Audio Post-Production",
			"Fusion Visual Effects",
			"Neural Engine AI Features",
		},
		Stock: model.UnlimitedStock,
	},
	{
		ID:              "8",
		Name:            "Sony 24-70mm f/2.8 GM",
		Description:     "Professional standard zoom lens with constant f/2.8 aperture.",
		Price:           4500,
		Category:        model.CategoryLens,
		Image:           "https://images.unsplash.com/photo-1607139677169-2aa160eea0c6?q=80&w=1000",
		RentalAvailable: true,
		Features: []string{
			"Constant f/2.8 Maximum Aperture",
			"XA Lens Element and Nano AR Coating",
			"Direct Drive SSM Focus System",
			"Dust and Moisture Resistant",
			"Focus Hold Button and AF/MF Switch",
		},
		Stock: 7,
	},
	{
		ID:              "9",
		Name:            "Godox SL-60W LED Video Light",
		Description:     "Professional LED continuous lighting for video production with bowens mount.",
		Price:           2800,
		Category:        model.CategoryLighting,
		Image:           "https://images.unsplash.com/photo-1621330396173-e41b1cafd17f?q=80&w=1000",
		RentalAvailable: true,
		Features: []string{
			"60W Daylight-Balanced Output",
			"5600K Color Temperature",
			"Bowens S-Type Mount",
			"Wireless Remote Control",
			"Silent Cooling System",
		},
		Stock: 10,
	},
	{
		ID:              "10",
		Name:            "Aputure 120d II LED Light",
		Description:     "Professional LED light with impressive output and precision color accuracy.",
		Price:           3500,
		Category:        model.CategoryLighting,
		Image:           "https://images.unsplash.com/photo-1612631609061-512368da963f?q=80&w=1000",
		RentalAvailable: true,
		Features: []string{
			"120W Daylight-Balanced Output",
			"CRI/TLCI 97+ Color Accuracy",
			"Bowens Mount Compatibility",
			"DMX Control Option",
			"Noise-Free Operation",
		},
		Stock: 8,
	},
	{
		ID:              "11",
		Name:            "DJI Mavic 3 Pro",
		Description:     "Professional drone with Hasselblad camera system and advanced flight capabilities.",
		Price:           18500,
		Category:        model.CategoryDrone,
		Image:           "https://images.unsplash.com/photo-1473968512647-3e447244af8f?q=80&w=1000",
		RentalAvailable: true,
		Features: []string{
			"Hasselblad 4/3 CMOS Sensor",
			"5.1K/50fps Video Recording",
			"46-Minute Flight Time",
			"15km Video Transmission",
			"Advanced Return to Home",
		},
		Stock: 5,
	},
	{
		ID:              "12",
		Name:            "DJI Mini 3 Pro",
		Description:     "Compact sub-250g drone with professional-grade camera and obstacle avoidance.",
		Price:           7200,
		Category:        model.CategoryDrone,
		Image:           "https://images.unsplash.com/photo-1576502200916-f4ed2a1819e6?q=80&w=1000",
		RentalAvailable: true,
		Features: []string{
			"1/1.3-inch CMOS Sensor",
			"4K/60fps HDR Video",
			"34-Minute Flight Time",
			"Tri-Directional Obstacle Sensing",
			"Under 250g Takeoff Weight",
		},
		Stock: 6,
	},
	{
		ID:              "13",
		Name:            "Final Cut Pro X",
		Description:     "Apple's professional video editing software with powerful tools and seamless ProRes integration.",
		Price:           5500,
		Category:        model.CategoryEditing,
		Image:           "https://images.unsplash.com/photo-1633118442179-e9dae2a4af25?q=80&w=1000",
		RentalAvailable: false,
		Features: []string{
			"Magnetic Timeline Interface",
			"Advanced Color Grading",
			"Seamless ProRes Integration",
			"Motion Graphics Templates",
			"360° VR Editing",
		},
		Stock: model.UnlimitedStock,
	},
	{
		ID:              "14",
		Name:            "Adobe After Effects Subscription",
		Description:     "Industry-standard motion graphics and visual effects software.",
		Price:           4200,
		Category:        model.CategoryEditing,
		Image:           "https://images.unsplash.com/photo-1626785774625-9b118f5e8e98?q=80&w=1000",
		RentalAvailable: false,
		Features: []string{
			"Advanced Compositing Tools",
			"3D Design Capabilities",
			"Character Animation",
			"Dynamic Motion Graphics",
			"Integration with other Adobe Apps",
		},
		Stock: model.UnlimitedStock,
	},
	{
		ID:              "15",
		Name:            "Nikon Z9",
		Description:     "Flagship professional mirrorless camera with advanced AI subject detection.",
		Price:           14500,
		Category:        model.CategoryCamera,
		Image:           "https://images.unsplash.com/photo-1580707221190-bd94d9087b7f?q=80&w=1000",
		RentalAvailable: true,
		Features: []string{
			"45.7MP Stacked CMOS Sensor",
			"8K30p and 4K120p Video Recording",
			"120fps Continuous Shooting",
			"3D Tracking with Subject Detection",
			"Blackout-Free EVF",
		},
		Stock: 3,
	},
	{
		ID:              "16",
		Name:            "Canon RF 70-200mm f/2.8L IS USM",
		Description:     "Professional telephoto zoom lens with constant f/2.8 aperture.",
		Price:           6200,
		Category:        model.CategoryLens,
		Image:           "https://images.unsplash.com/photo-1617560492504-7477691760e0?q=80&w=1000",
		RentalAvailable: true,
		Features: []string{
			"Constant f/2.8 Maximum Aperture",
			"Optical Image Stabilization",
			"Dual Nano USM Motors",
			"Customizable Control Ring",
			"Weather-Sealed Construction",
		},
		Stock: 5,
	},
	{
		ID:              "17",
		Name:            "RØDE VideoMic Pro+",
		Description:     "Professional on-camera shotgun microphone for clear audio recording.",
		Price:           1800,
		Category:        model.CategoryAccessory,
		Image:           "https://images.unsplash.com/photo-1618143357686-6b45e4f486db?q=80&w=1000",
		RentalAvailable: true,
		Features: []string{
			"Digital Switching with Safety Channel",
			"Automatic Power On/Off",
			"Rechargeable Battery",
			"2-Stage High Pass Filter",
			"High Frequency Boost",
		},
		Stock: 12,
	},
	{
		ID:              "18",
		Name:            "Profoto B10 Plus",
		Description:     "Compact battery-powered studio flash with high output and TTL.",
		Price:           5300,
		Category:        model.CategoryLighting,
		Image:           "https://images.unsplash.com/photo-1563319002-700a4c2fc187?q=80&w=1000",
		RentalAvailable: true,
		Features: []string{
			"500Ws Output",
			"High-Speed Sync",
			"TTL Metering",
			"Smartphone Control",
			"Continuous LED Light",
		},
		Stock: 6,
	},
	{
		ID:              "19",
		Name:            "Neewer LED Ring Light",
		Description:     "18-inch bi-color LED ring light kit with stand for portrait and video shooting.",
		Price:           1200,
		Category:        model.CategoryLighting,
		Image:           "https://images.unsplash.com/photo-1574009696517-7e6268b89714?q=80&w=1000",
		RentalAvailable: true,
		Features: []string{
			"3200-5600K Color Temperature",
			"Dimmable Output",
			"Smartphone Holder",
			"Hot Shoe Adapter",
			"Remote Control",
		},
		Stock: 15,
	},
	{
		ID:              "20",
		Name:            "Adobe Photoshop Subscription",
		Description:     "Professional photo editing and graphic design software.",
		Price:           3600,
		Category:        model.CategoryEditing,
		Image:           "https://images.unsplash.com/photo-1562159278-1253a58da141?q=80&w=1000",
		RentalAvailable: false,
		Features: []string{
			"Advanced Layer Controls",
			"Content-Aware Fill",
			"Neural Filters",
			"Camera RAW Integration",
			"3D Design Capabilities",
		},
		Stock: model.UnlimitedStock,
	},
	{
		ID:              "21",
		Name:            "Autel EVO II Pro",
		Description:     "Professional drone with 6K camera and advanced obstacle avoidance.",
		Price:           12500,
		Category:        model.CategoryDrone,
		Image:           "https://images.unsplash.com/photo-1606740256334-432a3872f1b8?q=80&w=1000",
		RentalAvailable: true,
		Features: []string{
			"1-inch CMOS Sensor",
			"6K Video Recording",
			"40-Minute Flight Time",
			"Omnidirectional Obstacle Avoidance",
			"9km Video Transmission",
		},
		Stock: 4,
	},
	{
		ID:              "22",
		Name:            "Skylum Luminar AI",
		Description:     "AI-powered photo editing software with automated enhancement tools.",
		Price:           2900,
		Category:        model.CategoryEditing,
		Image:           "https://images.unsplash.com/photo-1568952433726-3896e3881c65?q=80&w=1000",
		RentalAvailable: false,
		Features: []string{
			"AI Sky Replacement",
			"Portrait Enhancement",
			"Composition AI",
			"Landscape Enhancement",
			"One-Click Presets",
		},
		Stock: model.UnlimitedStock,
	},
	{
		ID:              "23",
		Name:            "GoPro HERO11 Black",
		Description:     "Waterproof action camera with stabilization and 5.3K video.",
		Price:           2800,
		Category:        model.CategoryCamera,
		Image:           "https://images.unsplash.com/photo-1569175578771-c1c1962e434d?q=80&w=1000",
		RentalAvailable: true,
		Features: []string{
			"5.3K60 Video",
			"HyperSmooth 5.0 Stabilization",
			"27MP Photos",
			"Waterproof to 33ft",
			"TimeWarp 3.0",
		},
		Stock: 10,
	},
	{
		ID:              "24",
		Name:            "Sigma 85mm f/1.4 Art",
		Description:     "Professional portrait lens with exceptional sharpness and bokeh.",
		Price:           3800,
		Category:        model.CategoryLens,
		Image:           "https://images.unsplash.com/photo-1610402568654-da5fdb7f3b0c?q=80&w=1000",
		RentalAvailable: true,
		Features: []string{
			"f/1.4 Maximum Aperture",
			"Hyper-Sonic Motor (HSM)",
			"Super Multi-Layer Coating",
			"Brass Bayonet Mount",
			"Minimum Focus Distance of 0.85m",
		},
		Stock: 7,
	},
}
