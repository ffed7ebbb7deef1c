package graph

// sampleRelationships is the university academic network the graph is
// seeded with at startup and after a reset. Triples are
// (source, relationship, target).
var sampleRelationships = [][3]string{
	{"John Doe", "enrolled_in", "Computer Science"},
	{"John Doe", "advised_by", "Dr. Smith"},
	{"Jane Smith", "enrolled_in", "Computer Science"},
	{"Jane Smith", "advised_by", "Dr. Smith"},

	{"Dr. Smith", "teaches", "Machine Learning"},
	{"Dr. Smith", "belongs_to", "Computer Science"},
	{"Dr. Johnson", "teaches", "Data Structures"},
	{"Dr. Johnson", "belongs_to", "Computer Science"},

	{"Machine Learning", "offered_by", "Computer Science"},
	{"Data Structures", "offered_by", "Computer Science"},
	{"Computer Science", "part_of", "Engineering Department"},

	{"Research Group A", "led_by", "Dr. Smith"},
	{"John Doe", "member_of", "Research Group A"},
}

func (s *Store) seedLocked() {
	for _, rel := range sampleRelationships {
		s.addLocked(rel[0], rel[1], rel[2])
	}
}
