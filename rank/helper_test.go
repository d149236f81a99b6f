package rank

// entity builds an entity from metric name/value pairs, a nil value is
// written as a missing metric.
func entity(id string, pairs ...any) Entity {
	e := Entity{ID: id, Metrics: map[string]*float64{}}
	for i := 0; i < len(pairs); i += 2 {
		name := pairs[i].(string)
		if pairs[i+1] == nil {
			e.Metrics[name] = nil
			continue
		}
		v := pairs[i+1].(float64)
		e.Metrics[name] = &v
	}
	return e
}

type idRank struct {
	ID   string
	Rank int
}

func ranks(results []Result) []idRank {
	var got []idRank
	for _, r := range results {
		got = append(got, idRank{r.EntityID, r.Rank})
	}
	return got
}
