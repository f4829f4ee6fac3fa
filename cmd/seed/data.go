package main

import (
	"github.com/elishalema/portfolio-service/internal/profile"
	"github.com/elishalema/portfolio-service/internal/skill"
	"github.com/elishalema/portfolio-service/internal/work"
)

var initialWorks = []work.Work{
	// Website Screenshots
	{
		Title:       "NatureWise Tours",
		Category:    "Website's Screenshot",
		ImageSrc:    "/works/Website's Screenshots/NatureWiseTours.jpg",
		Description: "A comprehensive tourism platform for nature expeditions and guided tours.",
		Tags:        work.Tags{"React", "Tourism", "UI/UX"},
		WebsiteURL:  "https://naturewisetours.netlify.app",
		Views:       1250,
	},
	// Logos
	{
		Title:       "Kili Expeditions",
		Category:    "Logo",
		ImageSrc:    "/works/Logos/Kili Expeditions.jpg",
		Description: "Brand identity design for a leading mountain climbing expedition company.",
		Tags:        work.Tags{"Branding", "Logos", "Travel"},
		Views:       840,
	},
	{
		Title:       "Macha Stores",
		Category:    "Logo",
		ImageSrc:    "/works/Logos/Macha Stores.jpg",
		Description: "Modern retail brand identity with a focus on simplicity and accessibility.",
		Tags:        work.Tags{"Retail", "Corporate", "Branding"},
		Views:       620,
	},
	{
		Title:       "Mountain Expeditions",
		Category:    "Logo",
		ImageSrc:    "/works/Logos/Mountain Expeditions.jpg",
		Description: "High-altitude adventure group logo design.",
		Tags:        work.Tags{"Adventure", "Outdoor", "Graphic Design"},
		Views:       450,
	},
	{
		Title:       "Mtumba Classic",
		Category:    "Logo",
		ImageSrc:    "/works/Logos/Mtumba Classic.jpg",
		Description: "A classic logo for a high-end thrift and apparel brand.",
		Tags:        work.Tags{"Fashion", "Vintage", "Identity"},
		Views:       310,
	},
	{
		Title:       "RestoPulse",
		Category:    "Logo",
		ImageSrc:    "/works/Logos/RestoPulse Logo.png",
		Description: "Tech-forward restaurant management system branding.",
		Tags:        work.Tags{"Tech", "SaaS", "Restaurant"},
		Views:       920,
	},
	{
		Title:       "Tangazeni Injili Choir",
		Category:    "Logo",
		ImageSrc:    "/works/Logos/TANGAZENI INJILI CHOIR .jpg",
		Description: "Vibrant identity for a gospel choir community.",
		Tags:        work.Tags{"Gospel", "Religious", "Community"},
		Views:       150,
	},
	// Posters & Banners
	{
		Title:       "A&B Accessories Brochure",
		Category:    "Poster/Banner",
		ImageSrc:    "/works/Posters & Banners/A&B Accessories Bronchure FP.jpg",
		Description: "Premium product showcase brochure for mobile accessories.",
		Tags:        work.Tags{"Print", "Layout", "Product"},
		Views:       540,
	},
	{
		Title:       "Angiee's Hair Saloon",
		Category:    "Poster/Banner",
		ImageSrc:    "/works/Posters & Banners/Angiee's Hair Saloon.jpg",
		Description: "Marketing poster for a high-end beauty and hair styling salon.",
		Tags:        work.Tags{"Marketing", "Beauty", "Service"},
		Views:       280,
	},
	{
		Title:       "Digital Networking Poster",
		Category:    "Poster/Banner",
		ImageSrc:    "/works/Posters & Banners/Digital Networking Poster.jpg",
		Description: "Abstract visual representing the power of global connectivity.",
		Tags:        work.Tags{"Digital", "Concept", "Modern"},
		Views:       410,
	},
	{
		Title:       "Social Night Event",
		Category:    "Poster/Banner",
		ImageSrc:    "/works/Posters & Banners/Social Night Poster.jpg",
		Description: "High-energy event poster for a community gathering.",
		Tags:        work.Tags{"Event", "Entertainment", "Social"},
		Views:       670,
	},
	{
		Title:       "Hilda Wakala Banner",
		Category:    "Poster/Banner",
		ImageSrc:    "/works/Posters & Banners/Hilda Wakala Banner.jpg",
		Description: "Professional service banner for financial agency.",
		Tags:        work.Tags{"Finance", "Corporate", "Banner"},
		Views:       220,
	},
	{
		Title:       "Serval Wildlife Poster",
		Category:    "Poster/Banner",
		ImageSrc:    "/works/Posters & Banners/Serval Wildlife Poster.jpg",
		Description: "Conservation awareness poster featuring exotic wildlife.",
		Tags:        work.Tags{"Conservation", "Nature", "Poster"},
		Views:       190,
	},
	{
		Title:       "TIC Youtube Thumbnail",
		Category:    "Poster/Banner",
		ImageSrc:    "/works/Posters & Banners/TIC Youtube Thumbnail.jpg",
		Description: "Engaging visual designed for high click-through rates on digital platforms.",
		Tags:        work.Tags{"Digital", "Social Media", "Marketing"},
		Views:       1100,
	},
	{
		Title:       "A&B Accessories Poster",
		Category:    "Poster/Banner",
		ImageSrc:    "/works/Posters & Banners/A&B Accessories Poster.jpg",
		Description: "Eye-catching promotional poster for mobile accessories retail brand.",
		Tags:        work.Tags{"Retail", "Marketing", "Product"},
		Views:       380,
	},
	{
		Title:       "Food Poster",
		Category:    "Poster/Banner",
		ImageSrc:    "/works/Posters & Banners/Food Poster.jpg",
		Description: "Appetizing food promotional poster for restaurant marketing.",
		Tags:        work.Tags{"Food", "Culinary", "Marketing"},
		Views:       520,
	},
	{
		Title:       "TIC New Year Poster",
		Category:    "Poster/Banner",
		ImageSrc:    "/works/Posters & Banners/TIC New Year Poster.jpg",
		Description: "Festive new year celebration poster with modern design elements.",
		Tags:        work.Tags{"Event", "Holiday", "Celebration"},
		Views:       680,
	},
	{
		Title:       "Usaili 2024",
		Category:    "Poster/Banner",
		ImageSrc:    "/works/Posters & Banners/Usaili 2024.jpg",
		Description: "Creative design for annual 2024 initiative promotional campaign.",
		Tags:        work.Tags{"Campaign", "Event", "Branding"},
		Views:       450,
	},
}

var initialSkills = []skill.Skill{
	{Name: "Adobe Photoshop", Percentage: 92, Category: "design", Icon: "Photoshop", Color: "#31A8FF"},
	{Name: "Adobe Illustrator", Percentage: 88, Category: "design", Icon: "Illustrator", Color: "#FF9A00"},
	{Name: "Canva", Percentage: 90, Category: "design", Icon: "Canva", Color: "#00C4CC"},
	{Name: "React", Percentage: 85, Category: "development", Icon: "React", Color: "#61DAFB"},
	{Name: "Node.js", Percentage: 82, Category: "development", Icon: "Node", Color: "#339933"},
	{Name: "TailwindCSS", Percentage: 93, Category: "development", Icon: "Tailwind", Color: "#06B6D4"},
}

var initialProfile = profile.Profile{
	ID:         profile.SingletonID,
	Bio:        "I'm Elisha Lema, a passionate designer and developer from Tanzania. My journey began in a small digital studio where I discovered the magic of blending aesthetics with functionality. What started as a curious interest in design evolved into a full-fledged career where I now help businesses transform their digital presence.",
	Experience: "4+ Years",
	Location:   "Tanzania",
	Email:      "elishalema12@gmail.com",
}
