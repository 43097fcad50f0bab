package recommend

import "github.com/heartmarshall/moodverse-backend/internal/domain"

type table = [domain.MoodCount][]domain.Card

var music = table{
	domain.MoodHappy: {
		{
			Title:       "Bollywood Party Hits",
			Description: "Upbeat Bollywood songs to keep you dancing",
			Link:        "https://open.spotify.com/playlist/37i9dQZF1DX0XUfTFmNBRM",
			Platform:    "Spotify",
		},
		{
			Title:       "Punjabi Beats",
			Description: "High-energy Punjabi music",
			Link:        "https://www.youtube.com/playlist?list=PLvlw_ICcAI4c7xX_Y_8RtGYr1wHgY6ZO3",
			Platform:    "YouTube",
		},
	},
	domain.MoodSad: {
		{
			Title:       "Soulful Hindi Melodies",
			Description: "Emotional and touching Bollywood songs",
			Link:        "https://open.spotify.com/playlist/37i9dQZF1DX6cg4h2PoN9y",
			Platform:    "Spotify",
		},
		{
			Title:       "Classical Indian Music",
			Description: "Calming ragas and classical pieces",
			Link:        "https://www.youtube.com/playlist?list=PLvlw_ICcAI4d_f-E-YuRRvY1KpJ1EW1w1",
			Platform:    "YouTube",
		},
	},
	domain.MoodNeutral: {
		{
			Title:       "Indie India",
			Description: "Contemporary Indian indie artists",
			Link:        "https://open.spotify.com/playlist/37i9dQZF1DX5q67ZpWyRrZ",
			Platform:    "Spotify",
		},
		{
			Title:       "Sufi & Folk",
			Description: "Soulful Sufi and folk music",
			Link:        "https://www.youtube.com/playlist?list=PLvlw_ICcAI4f_oQPv7Y-lUJBXWXz4qgBd",
			Platform:    "YouTube",
		},
	},
	domain.MoodExcited: {
		{
			Title:       "Desi EDM Mix",
			Description: "Indian fusion with electronic beats",
			Link:        "https://open.spotify.com/playlist/37i9dQZF1DX7ZUug1ANKRP",
			Platform:    "Spotify",
		},
		{
			Title:       "Bollywood Workout",
			Description: "High-energy Bollywood hits for exercise",
			Link:        "https://www.youtube.com/playlist?list=PLvlw_ICcAI4e_sG8Y-4s-tXH-xXz4qgBl",
			Platform:    "YouTube",
		},
	},
	domain.MoodTired: {
		{
			Title:       "Peaceful Sanskrit Chants",
			Description: "Calming mantras and spiritual music",
			Link:        "https://open.spotify.com/playlist/37i9dQZF1DWZd79rJ6a7lp",
			Platform:    "Spotify",
		},
		{
			Title:       "Indian Instrumental",
			Description: "Soothing instrumental versions of Indian classics",
			Link:        "https://www.youtube.com/playlist?list=PLvlw_ICcAI4c_f-E-YuRRvY1KpJ1EW1w1",
			Platform:    "YouTube",
		},
	},
}

var movies = table{
	domain.MoodHappy: {
		{
			Title:       "3 Idiots",
			Genre:       "Comedy, Drama",
			Description: "A heartwarming tale of friendship and following your dreams",
			Link:        "https://www.netflix.com/title/70121522",
		},
		{
			Title:       "Zindagi Na Milegi Dobara",
			Genre:       "Adventure, Comedy, Drama",
			Description: "A joyful celebration of life and friendship",
			Link:        "https://www.amazon.com/Zindagi-Na-Milegi-Dobara-Akhtar/dp/B07CQKX1YH",
		},
	},
	domain.MoodSad: {
		{
			Title:       "Taare Zameen Par",
			Genre:       "Drama, Family",
			Description: "An emotional journey of a child and his teacher",
			Link:        "https://www.netflix.com/title/70087087",
		},
		{
			Title:       "Kal Ho Naa Ho",
			Genre:       "Romance, Drama",
			Description: "A touching story about living life to the fullest",
			Link:        "https://www.amazon.com/Kal-Ho-Naa-Shah-Khan/dp/B07C24MXPQ",
		},
	},
	domain.MoodNeutral: {
		{
			Title:       "Lunchbox",
			Genre:       "Drama, Romance",
			Description: "A heartwarming story of unexpected connection",
			Link:        "https://www.amazon.com/Lunchbox-Irrfan-Khan/dp/B00JFKX5YW",
		},
		{
			Title:       "Piku",
			Genre:       "Comedy, Drama",
			Description: "A slice-of-life story about family relationships",
			Link:        "https://www.netflix.com/title/80037004",
		},
	},
	domain.MoodExcited: {
		{
			Title:       "Dhoom 3",
			Genre:       "Action, Thriller",
			Description: "High-octane action and thrilling sequences",
			Link:        "https://www.amazon.com/Dhoom-3-Aamir-Khan/dp/B00JZKX3CW",
		},
		{
			Title:       "RRR",
			Genre:       "Action, Drama",
			Description: "Epic action drama with stunning visuals",
			Link:        "https://www.netflix.com/title/81476453",
		},
	},
	domain.MoodTired: {
		{
			Title:       "Barfi!",
			Genre:       "Comedy, Drama, Romance",
			Description: "A heartwarming and peaceful love story",
			Link:        "https://www.netflix.com/title/70242034",
		},
		{
			Title:       "English Vinglish",
			Genre:       "Drama, Family",
			Description: "A gentle and inspiring story of self-discovery",
			Link:        "https://www.amazon.com/English-Vinglish-Sridevi/dp/B00GXKF8BQ",
		},
	},
}

var activities = table{
	domain.MoodHappy: {
		{
			Title:       "Creative Expression",
			Description: "Channel your positive energy",
			Tasks: []string{
				"Learn a Bollywood dance routine",
				"Try your hand at rangoli art",
				"Practice mehendi designs",
				"Cook your favorite Indian dish",
			},
		},
		{
			Title:       "Social Connection",
			Description: "Share your joy with others",
			Tasks: []string{
				"Plan a chai time with friends",
				"Organize a festive gathering",
				"Join a garba/dandiya class",
				"Share family recipes",
			},
		},
	},
	domain.MoodSad: {
		{
			Title:       "Mindful Activities",
			Description: "Find peace and balance",
			Tasks: []string{
				"Practice yoga asanas",
				"Try pranayama breathing",
				"Listen to bhajans",
				"Visit a nearby temple",
			},
		},
		{
			Title:       "Self-Care Routine",
			Description: "Nurture yourself",
			Tasks: []string{
				"Make a cup of masala chai",
				"Oil massage (abhyanga)",
				"Practice meditation",
				"Write in your journal",
			},
		},
	},
	domain.MoodNeutral: {
		{
			Title:       "Productivity Boost",
			Description: "Make the most of your time",
			Tasks: []string{
				"Learn Sanskrit shlokas",
				"Practice classical music",
				"Study Vedic mathematics",
				"Read Indian literature",
			},
		},
		{
			Title:       "Skill Development",
			Description: "Learn something new",
			Tasks: []string{
				"Try a new Indian recipe",
				"Learn classical dance basics",
				"Practice calligraphy",
				"Study Ayurveda basics",
			},
		},
	},
	domain.MoodExcited: {
		{
			Title:       "Energy Channel",
			Description: "Make use of your high spirits",
			Tasks: []string{
				"Join a Bhangra class",
				"Learn Bollywood choreography",
				"Practice tabla or drums",
				"Plan a cultural event",
			},
		},
		{
			Title:       "Creative Pursuits",
			Description: "Express your energy",
			Tasks: []string{
				"Create fusion music",
				"Design Indian fashion",
				"Paint madhubani art",
				"Make DIY festival decorations",
			},
		},
	},
	domain.MoodTired: {
		{
			Title:       "Gentle Movement",
			Description: "Restore your energy",
			Tasks: []string{
				"Practice gentle yoga",
				"Do simple stretches",
				"Walk in a garden",
				"Feed birds (a traditional activity)",
			},
		},
		{
			Title:       "Restorative Practice",
			Description: "Find peace and rest",
			Tasks: []string{
				"Listen to Sanskrit chants",
				"Practice meditation",
				"Try aromatherapy with Indian essences",
				"Read spiritual texts",
			},
		},
	},
}
