package problem

// NewRanking assigns ranks to topics in preference order: the first of K topics
// gets K, each following topic one less. A topic listed twice keeps the rank of
// its last occurrence.
func NewRanking(topics []string) Ranking {
	r := make(Ranking, len(topics))
	next := len(topics)
	for _, t := range topics {
		r[t] = next
		next--
	}

	return r
}

// Rank returns the rank of topic, or 0 when it is not listed.
func (r Ranking) Rank(topic string) int {
	return r[topic]
}

// Apply fills the Rank field of every problem in ps from r.
func Apply(r Ranking, ps []Problem) {
	for i := range ps {
		ps[i].Rank = r.Rank(ps[i].Topic)
	}
}
