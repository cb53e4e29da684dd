package catalog

const fallbackTopic = "General Topics"

var topicsBySubject = map[string][]string{
	"math": {"Derivatives", "Integration", "Limits", "Series", "Functions", "Algebra", "Geometry", "Trigonometry",
		"Statistics", "Probability", "Calculus", "Linear Algebra", "Differential Equations", "Complex Numbers",
		"Matrices", "Vectors", "Sequences", "Logarithms", "Exponentials", "Polynomials", "Rational Functions",
		"Conic Sections", "Parametric Equations", "Polar Coordinates"},
	"physics": {"Quantum Mechanics", "Thermodynamics", "Electromagnetism", "Optics", "Mechanics", "Waves",
		"Relativity", "Nuclear Physics", "Atomic Physics", "Fluid Dynamics", "Oscillations", "Gravitation", "Energy",
		"Momentum", "Electric Fields", "Magnetic Fields", "Circuits", "Semiconductors", "Superconductivity",
		"Particle Physics"},
	"chemistry": {"Organic Reactions", "Molecular Structure", "Kinetics", "Equilibrium", "Thermochemistry",
		"Electrochemistry", "Acids and Bases", "Redox Reactions", "Chemical Bonding", "Periodic Trends", "Gas Laws",
		"Solutions", "Crystallography", "Spectroscopy", "Catalysis", "Polymers", "Biochemistry",
		"Environmental Chemistry"},
	"biology": {"Cell Biology", "Genetics", "Evolution", "Ecology", "Molecular Biology", "Physiology", "Anatomy",
		"Biochemistry", "Microbiology", "Botany", "Zoology", "Immunology", "Neurobiology", "Developmental Biology",
		"Marine Biology", "Conservation Biology", "Biotechnology", "Bioinformatics", "Pharmacology", "Toxicology",
		"Epidemiology", "Bioethics"},
	"history": {"Ancient Civilizations", "Medieval Period", "Renaissance", "Modern Era", "World Wars", "Cold War",
		"Industrial Revolution", "American Revolution", "French Revolution", "Roman Empire", "Greek Civilization",
		"Egyptian History", "Asian History", "African History", "European History", "Colonial Period"},
	"literature": {"Poetry Analysis", "Novel Studies", "Literary Criticism", "Creative Writing", "Shakespeare",
		"Modern Literature", "Classical Literature", "American Literature", "British Literature",
		"World Literature", "Drama", "Short Stories", "Essays", "Rhetoric"},
}

// CurrentTopic returns the topic the student is working on next: the one at
// index CompletedTopics, clamped to the last topic.
func CurrentTopic(s Subject) string {
	topics := topicsBySubject[s.ID]
	if len(topics) == 0 {
		return fallbackTopic
	}
	i := min(max(s.CompletedTopics, 0), len(topics)-1)
	return topics[i]
}

// Topics returns the ordered topic list of a subject.
func Topics(subjectID string) []string {
	return append([]string(nil), topicsBySubject[subjectID]...)
}
