package fixtures

// Canonical vocabulary for generated demo data. BookableHours is the
// hour range doctors declare availability within.
var (
	Specializations = []string{
		"Cardiologist",
		"Dermatologist",
		"Neurologist",
		"Pediatrician",
		"General Practitioner",
		"Orthopedic Surgeon",
		"Radiologist",
		"Psychiatrist",
		"Endocrinologist",
		"Ophthalmologist",
	}

	Qualifications = []string{
		"MD (Doctor of Medicine)",
		"DO (Doctor of Osteopathic Medicine)",
		"MBBS (Bachelor of Medicine, Bachelor of Surgery)",
		"FACS (Fellow of the American College of Surgeons)",
		"FACP (Fellow of the American College of Physicians)",
		"FRCP (Fellow of the Royal College of Physicians)",
		"Board Certified in Internal Medicine",
		"Board Certified in Pediatrics",
		"Board Certified in Psychiatry",
		"Board Certified in Surgery",
	}

	DaysOfWeek = []string{
		"Monday",
		"Tuesday",
		"Wednesday",
		"Thursday",
		"Friday",
		"Saturday",
		"Sunday",
	}

	BookableHours = []int{9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19}
)

var firstNames = []string{
	"Ada", "Bruno", "Clara", "Diego", "Elena", "Felix", "Greta", "Hugo",
	"Irene", "Jonas", "Karla", "Luca", "Marta", "Nils", "Olivia", "Pablo",
	"Quinn", "Rosa", "Stefan", "Teresa",
}

var lastNames = []string{
	"Abbott", "Bianchi", "Costa", "Dietrich", "Eriksen", "Fontana",
	"Gallo", "Hoffmann", "Ivanov", "Johansson", "Keller", "Lombardi",
	"Moretti", "Novak", "Ortega", "Petrov", "Ricci", "Schmidt",
	"Torres", "Weber",
}

var reviewComments = []string{
	"Very attentive and explained everything clearly.",
	"Short waiting time, thorough examination.",
	"Friendly and professional, would book again.",
	"Helped me understand my treatment options.",
	"Felt rushed during the visit.",
	"Excellent bedside manner.",
	"The follow-up advice was really useful.",
	"Diagnosis was spot on, recovery went well.",
	"Listens carefully and never dismisses concerns.",
	"Average experience, but the staff was kind.",
}
