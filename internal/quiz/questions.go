package quiz

import "github.com/heartmarshall/moodverse-backend/internal/domain"

var questions = [domain.MoodCount][]domain.Question{
	domain.MoodHappy: {
		{
			Prompt:  "How likely are you to share your happiness with others?",
			Options: []string{"Very likely", "Somewhat likely", "Not sure", "Not likely"},
		},
		{
			Prompt:  "What activity would you most enjoy right now?",
			Options: []string{"Dancing", "Calling friends", "Creating art", "Relaxing alone"},
		},
		{
			Prompt:  "How energetic do you feel?",
			Options: []string{"Very energetic", "Moderately energetic", "Slightly energetic", "Not very energetic"},
		},
	},
	domain.MoodSad: {
		{
			Prompt:  "What would help you feel better right now?",
			Options: []string{"Talking to someone", "Being alone", "Physical activity", "Creative expression"},
		},
		{
			Prompt:  "How do you prefer to process your emotions?",
			Options: []string{"Writing", "Meditation", "Exercise", "Music"},
		},
		{
			Prompt:  "What type of support would be most helpful?",
			Options: []string{"Friend's company", "Professional guidance", "Self-reflection time", "Physical activity"},
		},
	},
	domain.MoodNeutral: {
		{
			Prompt:  "What would you like to accomplish today?",
			Options: []string{"Learn something new", "Complete tasks", "Relax and recharge", "Connect with others"},
		},
		{
			Prompt:  "How would you like to spend your energy?",
			Options: []string{"Productive tasks", "Creative projects", "Social activities", "Personal development"},
		},
		{
			Prompt:  "What would make your day better?",
			Options: []string{"Achievement", "Connection", "Relaxation", "Adventure"},
		},
	},
	domain.MoodExcited: {
		{
			Prompt:  "How would you like to channel your excitement?",
			Options: []string{"Physical activity", "Creative projects", "Social interaction", "Goal pursuit"},
		},
		{
			Prompt:  "What type of activity appeals to you most?",
			Options: []string{"High-energy exercise", "Creative expression", "Social gathering", "Learning something new"},
		},
		{
			Prompt:  "How would you like to share your energy?",
			Options: []string{"Group activities", "Individual pursuits", "Helping others", "Creative projects"},
		},
	},
	domain.MoodTired: {
		{
			Prompt:  "What type of rest do you need most?",
			Options: []string{"Physical rest", "Mental rest", "Emotional rest", "Social rest"},
		},
		{
			Prompt:  "What would help you recharge?",
			Options: []string{"Quiet time alone", "Gentle movement", "Nature sounds", "Light socializing"},
		},
		{
			Prompt:  "What activity feels most manageable?",
			Options: []string{"Meditation", "Gentle stretching", "Reading", "Listening to music"},
		},
	},
}

var bandMessages = map[domain.QuizBand]string{
	domain.QuizBandPositive: "You're making great choices for your current mood!",
	domain.QuizBandNeutral:  "You're on the right track with managing your mood.",
	domain.QuizBandBoost:    "Consider trying some of our recommended activities to boost your mood.",
}
