package catalogue

import (
	"sync"

	"github.com/pkordes/tourdesk/internal/domain"
)

// NewestFirstCity is the city that receives new tours; its listing is
// returned newest first.
const NewestFirstCity = "Aswan"

var (
	defaultOnce sync.Once
	defaultCat  *Catalogue
)

// Default returns the process-wide catalogue built from the static tour data.
// It is built once on first use and panics if the static data breaks an invariant.
func Default() *Catalogue {
	defaultOnce.Do(func() {
		defaultCat = MustNew(staticTours(), WithNewestFirst(NewestFirstCity))
	})
	return defaultCat
}

func itinerary(lines ...string) []domain.ItineraryLine {
	return domain.ParseItinerary(lines)
}

var nubaGallery = []string{
	"/assets/gallery/1.jpg", "/assets/gallery/2.jpg", "/assets/gallery/3.jpg",
	"/assets/gallery/4.jpg", "/assets/gallery/5.jpg", "/assets/gallery/6.jpg",
	"/assets/gallery/7.jpg", "/assets/gallery/8.jpg", "/assets/gallery/9.jpg",
	"/assets/gallery/10.jpg", "/assets/gallery/11.jpg", "/assets/gallery/12.jpg",
	"/assets/gallery/13.jpg", "/assets/gallery/14.jpg",
}

// staticTours returns the catalogue in publication order. New tours are
// appended at the end.
func staticTours() []domain.Tour {
	return []domain.Tour{
		{
			ID:          "1",
			Title:       "Pyramids of Giza & Sphinx Tour",
			Description: "Explore the last remaining Wonder of the Ancient World and the mysterious Sphinx in this half-day adventure.",
			Image:       "/assets/pyramids.jpg",
			Price:       85,
			Duration:    "6 hours",
			Location:    "Giza",
			City:        "Cairo",
			Rating:      4.9,
			MaxGuests:   15,
			Featured:    true,
			Itinerary: itinerary(
				"Pick up from hotel at 8:00 AM",
				"Visit the Great Pyramid of Khufu",
				"Explore the Pyramid of Khafre",
				"Discover the Pyramid of Menkaure",
				"Visit the Great Sphinx",
				"Photo stop at the panoramic view",
				"Return to hotel",
			),
			Includes: []string{"Hotel pickup and drop-off", "Professional tour guide", "Entrance fees to Giza complex", "Bottled water", "All taxes and service charges"},
			Excludes: []string{"Entrance inside the Great Pyramid (optional)", "Lunch", "Personal expenses", "Gratuities"},
			FullDescription: "Embark on an unforgettable journey to the Pyramids of Giza, one of the Seven Wonders of the Ancient World. " +
				"Explore the Great Pyramid of Khufu, the Pyramid of Khafre and the Pyramid of Menkaure, then stand before the enigmatic Sphinx " +
				"while your guide shares stories about the pharaohs and the engineering behind these monuments.",
		},
		{
			ID:          "2",
			Title:       "Egyptian Museum & Old Cairo Tour",
			Description: "Discover the treasures of ancient Egypt and explore the historic Islamic and Coptic quarters of Old Cairo.",
			Image:       "/assets/egyptian-museum-old-cairo.webp",
			Price:       75,
			Duration:    "8 hours",
			Location:    "Central Cairo",
			City:        "Cairo",
			Rating:      4.8,
			MaxGuests:   20,
			Featured:    true,
			Itinerary: itinerary(
				"Morning pickup from hotel",
				"Visit Egyptian Museum",
				"Explore Tutankhamun treasures",
				"Lunch at local restaurant",
				"Tour Coptic Cairo",
				"Visit Hanging Church",
				"Explore Ben Ezra Synagogue",
				"Walk through Khan el-Khalili Bazaar",
			),
			Includes: []string{"Hotel pickup and drop-off", "Professional Egyptologist guide", "Entrance fees to all sites", "Lunch at local restaurant", "Bottled water", "All taxes and service charges"},
			Excludes: []string{"Entrance to Royal Mummy Room (optional)", "Personal shopping", "Gratuities", "Drinks during lunch"},
			FullDescription: "Begin at the Egyptian Museum, home to the golden treasures of Tutankhamun. After lunch, journey through Old Cairo " +
				"to the Hanging Church and the Ben Ezra Synagogue, and end the day in the Khan el-Khalili bazaar.",
		},
		{
			ID:          "3",
			Title:       "Alexandria Day Trip",
			Description: "Visit the Pearl of the Mediterranean with its ancient library, citadel, and Roman amphitheater.",
			Image:       "/assets/alex.jpeg",
			Price:       120,
			Duration:    "12 hours",
			Location:    "Alexandria",
			City:        "Alexandria",
			Rating:      4.7,
			MaxGuests:   12,
			Itinerary: itinerary(
				"Early morning departure from Cairo",
				"Visit Pompey's Pillar",
				"Explore the Catacombs of Kom el Shoqafa",
				"Lunch with sea view",
				"Tour the new Library of Alexandria",
				"Visit Qaitbay Citadel",
				"Walk along the Corniche",
				"Return to Cairo",
			),
			Includes: []string{"Air-conditioned transportation", "Professional tour guide", "Entrance fees to all sites", "Seafood lunch", "Bottled water", "All taxes and service charges"},
			Excludes: []string{"Hotel pickup (meeting point in Cairo)", "Personal expenses", "Gratuities", "Optional activities"},
			FullDescription: "Escape to Alexandria, the city founded by Alexander the Great. Visit Pompey's Pillar, descend into the Catacombs of " +
				"Kom el Shoqafa, explore the Library of Alexandria and finish at the Qaitbay Citadel, built on the site of the ancient Lighthouse.",
		},
		{
			ID:          "4",
			Title:       "Luxor Temple & Karnak Complex",
			Description: "Explore the magnificent temples of ancient Thebes in the world's greatest open-air museum.",
			Image:       "/assets/karnak-temple.png",
			Price:       95,
			Duration:    "8 hours",
			Location:    "Luxor East Bank",
			City:        "Luxor",
			Rating:      4.9,
			MaxGuests:   16,
			Featured:    true,
			Itinerary: itinerary(
				"Morning pickup from hotel",
				"Visit Karnak Temple Complex",
				"Explore the Great Hypostyle Hall",
				"Lunch at local restaurant",
				"Tour Luxor Temple",
				"Walk the Avenue of Sphinxes",
				"Sunset viewing opportunity",
				"Return to hotel",
			),
			Includes: []string{"Hotel pickup and drop-off", "Professional Egyptologist guide", "Entrance fees to both temples", "Lunch at local restaurant", "Bottled water", "All taxes and service charges"},
			Excludes: []string{"Sound and Light show (optional)", "Personal expenses", "Gratuities", "Drinks during lunch"},
			FullDescription: "Discover the religious capital of ancient Egypt. Begin at Karnak and its Great Hypostyle Hall with 134 columns, " +
				"then explore Luxor Temple, connected to Karnak by the Avenue of Sphinxes, as the sunset lights the monuments.",
		},
		{
			ID:          "5",
			Title:       "Valley of the Kings & Hatshepsut Temple",
			Description: "Journey to the royal burial ground and visit the magnificent mortuary temple of Egypt's female pharaoh.",
			Image:       "/assets/temple-of-queen-hatshepsut.png",
			Price:       110,
			Duration:    "8 hours",
			Location:    "Luxor West Bank",
			City:        "Luxor",
			Rating:      4.8,
			MaxGuests:   14,
			Itinerary: itinerary(
				"Morning pickup from hotel",
				"Visit Valley of the Kings",
				"Explore three royal tombs",
				"Visit Hatshepsut Temple",
				"Lunch with Nile view",
				"Stop at Colossi of Memnon",
				"Optional alabaster factory visit",
				"Return to hotel",
			),
			Includes: []string{"Hotel pickup and drop-off", "Professional Egyptologist guide", "Entrance fees to all sites", "Lunch at local restaurant", "Bottled water", "All taxes and service charges"},
			Excludes: []string{"Entrance to Tutankhamun's tomb (optional)", "Personal expenses", "Gratuities", "Additional tomb visits"},
			FullDescription: "Explore the Valley of the Kings and three decorated royal tombs, continue to the cliff-cut temple of Hatshepsut, " +
				"and stop at the Colossi of Memnon, guardians of the Theban necropolis for over 3,400 years.",
		},
		{
			ID:          "6",
			Title:       "Aswan High Dam ",
			Description: "Discover modern engineering marvels and ancient temples relocated to save them from rising waters.",
			Image:       "/assets/high-dam-aswan.webp",
			Price:       40,
			Duration:    "6 hours",
			Location:    "Aswan",
			City:        "Aswan",
			Rating:      4.7,
			MaxGuests:   18,
			Itinerary: itinerary(
				"Morning pickup from hotel",
				"Visit Aswan High Dam",
				"Boat ride to Philae Temple",
				"Explore Temple of Isis",
				"Lunch at Nubian restaurant",
				"Visit Nubian Village",
				"Felucca sailing on the Nile",
				"Return to hotel",
			),
			Includes: []string{"Hotel pickup and drop-off", "Professional tour guide", "Entrance fees to all sites", "Boat transfers", "Lunch at Nubian restaurant", "Bottled water", "All taxes and service charges"},
			Excludes: []string{"Sound and Light show at Philae (optional)", "Personal expenses", "Gratuities", "Shopping at Nubian village"},
			FullDescription: aswanDescription,
		},
		{
			ID:          "7",
			Title:       "Abu Simbel Temples Day Trip",
			Description: "Marvel at Ramses II's colossal temples, one of Egypt's most spectacular archaeological sites.",
			Image:       "/assets/abu-simbel.jpg",
			Price:       180,
			Duration:    "10 hours",
			Location:    "Abu Simbel",
			City:        "Aswan",
			Rating:      4.9,
			MaxGuests:   10,
			Featured:    true,
			Itinerary: itinerary(
				"Very early morning departure (4:00 AM)",
				"Drive through the desert to Abu Simbel",
				"Visit the Great Temple of Ramses II",
				"Explore the Small Temple of Nefertari",
				"Learn about the temple relocation project",
				"Lunch at local restaurant",
				"Return journey to Aswan",
				"Evening arrival at hotel",
			),
			Includes: []string{"Hotel pickup and drop-off", "Air-conditioned transportation", "Professional Egyptologist guide", "Entrance fees to both temples", "Lunch at local restaurant", "Bottled water", "All taxes and service charges"},
			Excludes: []string{"Early morning breakfast", "Personal expenses", "Gratuities", "Optional activities"},
			FullDescription: "Journey to Abu Simbel, where four 20-metre statues of Ramses II guard the Great Temple and a smaller temple honours " +
				"Queen Nefertari. Learn how UNESCO moved both temples stone by stone to save them from Lake Nasser.",
		},
		{
			ID:              "8",
			Title:           "Nile Felucca Sunset Cruise",
			Description:     "Enjoy a peaceful sailing experience on the Nile River aboard a traditional Egyptian sailboat.",
			Image:           "/assets/felucca-aswan.jpg",
			Price:           30,
			Duration:        "1 hours",
			Location:        "Aswan",
			City:            "Aswan",
			Rating:          4.6,
			MaxGuests:       8,
			Itinerary:       feluccaItinerary(),
			Includes:        feluccaIncludes,
			Excludes:        feluccaExcludes,
			FullDescription: feluccaDescription,
		},
		{
			ID:          "9",
			Title:       "Philae Temple",
			Description: "Discover the ancient temple of Isis, dedicated to the goddess of fertility and motherhood.",
			Image:       "/assets/philae-temple.jpg",
			Price:       45,
			Duration:    "4 hours",
			Location:    "Aswan",
			City:        "Aswan",
			Rating:      4.7,
			MaxGuests:   18,
			Itinerary: itinerary(
				"Morning pickup from hotel",
				"Visit Philae Temple",
				"Explore Temple of Isis",
				"Return to hotel",
			),
			Includes:        []string{"Hotel pickup and drop-off", "Professional tour guide", "Entrance fees to all sites", "Bottled water", "All taxes and service charges"},
			Excludes:        []string{"Personal expenses", "Gratuities"},
			FullDescription: aswanDescription,
		},
		{
			ID:          "10",
			Title:       "Nubian Village",
			Description: "Discover the traditional Nubian village of Aswan, known for its unique culture and traditional way of life.",
			Image:       "/assets/nubian-village.jpg",
			Price:       45,
			Duration:    "4 hours",
			Location:    "Aswan",
			City:        "Aswan",
			Rating:      4.7,
			MaxGuests:   18,
			Itinerary: itinerary(
				"Morning pickup from hotel",
				"Visit Nubian Village",
				"Explore traditional Nubian culture",
				"Lunch at Nubian restaurant",
				"Return to hotel",
			),
			Includes:        []string{"Hotel pickup and drop-off", "Professional tour guide", "Entrance fees to all sites", "Lunch at Nubian restaurant", "Bottled water", "All taxes and service charges"},
			Excludes:        []string{"Personal expenses", "Gratuities"},
			FullDescription: aswanDescription,
		},
		{
			// Same title as tour 8; the explicit slug keeps slugs unique.
			ID:              "11",
			Slug:            "nile-felucca-sunset-cruise-luxor",
			Title:           "Nile Felucca Sunset Cruise",
			Description:     "Enjoy a peaceful sailing experience on the Nile River aboard a traditional Egyptian sailboat.",
			Image:           "/assets/felucca-luxor.jpg",
			Price:           30,
			Duration:        "1 hours",
			Location:        "Luxor",
			City:            "Luxor",
			Rating:          4.9,
			MaxGuests:       8,
			Featured:        true,
			Itinerary:       feluccaItinerary(),
			Includes:        feluccaIncludes,
			Excludes:        feluccaExcludes,
			FullDescription: feluccaDescription,
		},
		{
			ID:                    "12",
			Title:                 "Nuba Experience",
			Description:           "A unique Nubian experience on a traditional Dahabya - Discover authentic Nubian culture in an exceptional 4-day journey",
			Image:                 "/assets/nuba.jpg",
			Price:                 8500,
			Duration:              "4 days",
			Location:              "Aswan",
			City:                  "Aswan",
			Rating:                5.0,
			MaxGuests:             16,
			Featured:              true,
			RequiresDateSelection: true,
			Itinerary: itinerary(
				"Day 1",
				"Train station pickup",
				"Transfer to Dahabya",
				"Snacks time on Dahabya",
				"A visit to:",
				"• The Nubian village",
				"• Nubian souq",
				"• Nubian school",
				"• Learn about the culture of Nuba",
				"Dinner on the Dahabya",
				"",
				"Day 2",
				"Breakfast on the Dahabya",
				"A visit to:",
				"• The Temple of Isis, Hathor",
				"• The Hi-Dam",
				"• The Soviet Egyptian Friendship Symbol",
				"Dinner on the Dahabya",
				"",
				"Day 3",
				"Breakfast on the Dahabya",
				"A visit to:",
				"• The Botanical Garden",
				"• Mafia Island",
				"• Abu-Al Hawa Mountain",
				"• Noble Tombs",
				"• Kayak + Sandboarding (optional)",
				"Dinner on the Dahabya",
				"",
				"Day 4",
				"Abu-Simble Temple (optional)",
				"Breakfast on the Dahabya",
				"Free tour at Aswan Old Souq for shopping",
				"Transfer to the train station",
			),
			Includes: []string{"Hotel pickup and drop-off", "Accommodation on Dahabya", "All meals (breakfast, dinner)", "Professional tour guide", "All entrance fees", "Internal transfers", "All taxes and service charges"},
			Excludes: []string{"Abu Simbel Temple (optional)", "Kayak + Sandboarding (optional)", "Personal expenses", "Shopping at souqs", "Gratuities", "Train tickets"},
			FullDescription: "A unique Nubian experience on a traditional Dahabya. Enjoy accommodation on board and explore Nubian villages " +
				"and the archaeological sites of Aswan in an exceptional 4-day journey.",
			GalleryImages: nubaGallery,
		},
		{
			ID:          "13",
			Title:       "Nuba - New Years",
			Description: "Celebrate New Year's Eve on a Dahabya in Nubia — culture, nature, and parties along the Nile.",
			Image:       "/assets/31dec.png",
			Price:       11500,
			Duration:    "4 days",
			Location:    "Aswan",
			City:        "Aswan",
			Rating:      5.0,
			MaxGuests:   20,
			Featured:    true,
			Special:     true,
			Itinerary: itinerary(
				"Day 1",
				"Arrival to Aswan & pick-up from train station",
				"Check-in on the Dahabya & rest",
				"Visit Nubian houses and see crocodiles (tea & pie provided)",
				"Buy Nubian galabeya and customs for the party",
				"Premium dinner on the Kendaka Nubian House",
				"New Year's Party",
				"",
				"Day 2",
				"Breakfast on the Dahabya",
				"Boat trip to Philae Temple",
				"Visit Philae Temple",
				"Exploring hidden gems at Nubian Hesa Island",
				"Kayaking (optional)",
				"Premium dinner at Hesa Island",
				"Back to the Dahabya for the Nubian Party on deck",
				"",
				"Day 3",
				"Breakfast at the Dahabya",
				"Felluca Ride to:",
				" Abu Hawa Mountain (Hiking)",
				" Photos from the highest point in Aswan",
				" Sailing boat on the Nile River",
				" Visit to mafia island",
				" Sand boarding",
				"Premium dinner on the Dahabya",
				"Free time & shopping in Nubian markets",
				"",
				"Day 4",
				"Breakfast",
				"Luxor Hot Air Balloon (optional)",
				"Abu Simbel visit (optional)",
				"Check-out",
				"Drop-off at train station",
			),
			Includes: []string{"Accommodation", "Private transportation in Nuba (cars & boats)", "Tour guide from Golden Egypt Team", "All activities mentioned", "All meals and drinks mentioned (all dinners on the Dahabya)", `Nubian Party "Galabeya"`, "New Year's Party", "All tickets and permits required for the activities"},
			Excludes: []string{"Train / Flight tickets from/to Cairo-Aswan", "Extra meals and drinks", "Nubian party custom", "Personal expenses", "Medical services", "Kayaking", "Tips"},
			FullDescription: "Nuba, in Upper Egypt, is known for its cultural heritage and natural landscapes. Highlights include Philae Temple, " +
				"Nubian houses and their crocodiles, Heissa Island, the Abu Hawa Mountain hike and a Nubian Galabeya party. " +
				"The trip runs on 31/12 with New Year's celebrations on board the Dahabya.",
			GalleryImages: nubaGallery,
		},
	}
}

const aswanDescription = "Experience the blend of ancient history and modern engineering in Aswan. Visit the High Dam that created Lake Nasser, " +
	"take a boat to Philae Temple, relocated stone by stone to save it from the Nile, and spend time in a traditional Nubian village."

const feluccaDescription = "Sail the Nile aboard a traditional felucca, the wooden sailboat used on the river for thousands of years. " +
	"Circle Elephantine Island, visit the Botanical Garden and watch the sun set over the water with refreshments on board."

var (
	feluccaIncludes = []string{"Hotel pickup and drop-off", "Professional boat captain", "Felucca sailing experience", "Refreshments (tea, coffee, soft drinks)", "Entrance to Botanical Garden", "All taxes and service charges"}
	feluccaExcludes = []string{"Lunch or dinner", "Personal expenses", "Gratuities", "Additional drinks"}
)

func feluccaItinerary() []domain.ItineraryLine {
	return itinerary(
		"Afternoon pickup from hotel",
		"Board traditional felucca",
		"Sail around Elephantine Island",
		"Enjoy refreshments on board",
		"Watch the sunset over the Nile",
		"Return to dock",
		"Transfer back to hotel",
	)
}
