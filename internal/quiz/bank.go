package quiz

import "github.com/Adithya4code/Ambari/internal/ambari"

// Fallback returns the static question set for a place, or the generic
// Mysuru set when no place-specific bank exists. Used whenever generation
// is unavailable or parsing yields too few questions.
func Fallback(placeID string) []ambari.QuizQuestion {
	if qs, ok := bank[placeID]; ok {
		return qs
	}
	return genericBank
}

var bank = map[string][]ambari.QuizQuestion{
	"mysore_palace": {
		{
			Prompt:       "What is the main architectural style of Mysore Palace?",
			Options:      []string{"Indo-Saracenic", "Gothic", "Dravidian", "Persian"},
			CorrectIndex: 0,
		},
		{
			Prompt:       "During which festival is Mysore Palace illuminated with nearly 100,000 lights?",
			Options:      []string{"Holi", "Diwali", "Dasara", "Pongal"},
			CorrectIndex: 2,
		},
		{
			Prompt:       "Who designed the current Mysore Palace built between 1897-1912?",
			Options:      []string{"Edwin Lutyens", "Henry Irwin", "Frederick Stevens", "Robert Chisholm"},
			CorrectIndex: 1,
		},
		{
			Prompt:       "What happened to the old wooden palace before the current one was built?",
			Options:      []string{"It was sold to another royal family", "It was destroyed in an earthquake", "It was converted to a museum", "It was destroyed in a fire"},
			CorrectIndex: 3,
		},
		{
			Prompt:       "Which dynasty ruled Mysore for nearly 600 years and were patrons of the palace?",
			Options:      []string{"Hoysala Dynasty", "Wadiyar Dynasty", "Chola Dynasty", "Vijayanagara Dynasty"},
			CorrectIndex: 1,
		},
	},
	"jaganmohan_palace": {
		{
			Prompt:       "What does the name 'Jaganmohan' mean?",
			Options:      []string{"God's Blessing", "Pleasing to the World", "Royal Abode", "Palace of Light"},
			CorrectIndex: 1,
		},
		{
			Prompt:       "Who built the Jaganmohan Palace?",
			Options:      []string{"Krishnaraja Wadiyar III", "Krishnaraja Wadiyar IV", "Chamaraja Wadiyar IX", "Tipu Sultan"},
			CorrectIndex: 0,
		},
		{
			Prompt:       "Why was the Jaganmohan Palace built?",
			Options:      []string{"As a summer retreat", "As an alternate residence during Mysore Palace reconstruction", "As a wedding gift", "As a military headquarters"},
			CorrectIndex: 1,
		},
		{
			Prompt:       "What famous artist's works are displayed in the Jaganmohan Palace art gallery?",
			Options:      []string{"Raja Ravi Varma", "M.F. Husain", "S.H. Raza", "Amrita Sher-Gil"},
			CorrectIndex: 0,
		},
		{
			Prompt:       "What significant event in Karnataka's political history took place at Jaganmohan Palace?",
			Options:      []string{"Declaration of Independence from British rule", "First Karnataka Representative Assembly session", "Signing of the Mysore Treaty", "Coronation of the last Mysore King"},
			CorrectIndex: 1,
		},
	},
	"chamundeshwari_temple": {
		{
			Prompt:       "After whom is the Chamundeshwari Temple named?",
			Options:      []string{"A local saint", "A fierce form of Goddess Durga", "A Mysore queen", "A mountain deity"},
			CorrectIndex: 1,
		},
		{
			Prompt:       "How many steps lead to the Chamundeshwari Temple summit?",
			Options:      []string{"108", "555", "1,008", "2,001"},
			CorrectIndex: 2,
		},
		{
			Prompt:       "When was the main temple structure of Chamundeshwari Temple built?",
			Options:      []string{"5th century", "12th century", "17th century", "20th century"},
			CorrectIndex: 2,
		},
		{
			Prompt:       "What demon is associated with the origin of Mysuru's name?",
			Options:      []string{"Raktabija", "Mahishasura", "Shumbha", "Hiranyakashipu"},
			CorrectIndex: 1,
		},
		{
			Prompt:       "What famous statue is located on the way to Chamundi Hill?",
			Options:      []string{"Lord Ganesha", "Nandi (Bull)", "Lord Hanuman", "Lord Vishnu"},
			CorrectIndex: 1,
		},
	},
}

var genericBank = []ambari.QuizQuestion{
	{
		Prompt:       "What was Mysore previously known as?",
		Options:      []string{"Mahishapura", "Vijayanagara", "Srirangapatna", "Maisuru"},
		CorrectIndex: 0,
	},
	{
		Prompt:       "Which dynasty ruled Mysore for the longest period?",
		Options:      []string{"Hoysala Dynasty", "Wadiyar Dynasty", "Vijayanagara Empire", "Cholas"},
		CorrectIndex: 1,
	},
	{
		Prompt:       "What is Mysore famous for?",
		Options:      []string{"Silk and sandalwood", "Coffee plantations", "Spice markets", "Diamond mines"},
		CorrectIndex: 0,
	},
	{
		Prompt:       "Which festival is celebrated with great pomp in Mysore?",
		Options:      []string{"Pongal", "Onam", "Dasara", "Diwali"},
		CorrectIndex: 2,
	},
	{
		Prompt:       "What is the popular sweet dish from Mysore?",
		Options:      []string{"Rasogolla", "Mysore Pak", "Jalebi", "Laddu"},
		CorrectIndex: 1,
	},
}
