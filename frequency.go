package yield

// bucket returns the frequency matching a gap between two consecutive
// payments of a cadence, or Unknown.
func bucket(days int) Frequency {
	switch {
	case days == 6: // early weekly payment
		return Weekly
	case days >= 7 && days <= 10:
		return Weekly
	case days >= 11 && days <= 24: // bi-weekly payers are reported as monthly
		return Monthly
	case days >= 25 && days <= 35:
		return Monthly
	case days >= 80 && days <= 100:
		return Quarterly
	case days >= 150 && days <= 210:
		return SemiAnnual
	case days >= 330 && days <= 400:
		return Annual
	default:
		return Unknown
	}
}

// confirmFrequencies sets the Frequency of every Regular dividend of divs.
//
// The cadence is the sequence of non Special payments. A Regular payment's
// frequency is the bucket of the gap to the next payment of the cadence: it
// is the following payment that confirms the rhythm the current one belongs
// to. The latest payment inherits the frequency of the one before it.
//
// When the gap to the next payment matches no bucket, the gap from the
// previous payment is used, then the previous frequency.
func confirmFrequencies(divs []Dividend) {
	cadence := make([]int, 0, len(divs))
	for i, d := range divs {
		if d.Type != Special {
			cadence = append(cadence, i)
		}
	}
	// gaps[k] is the number of days between cadence k-1 and k.
	gaps := make([]int, len(cadence))
	for k := 1; k < len(cadence); k++ {
		gaps[k] = divs[cadence[k]].ExDate.DaysSince(divs[cadence[k-1]].ExDate)
	}

	previous := Unknown
	for k, i := range cadence {
		if divs[i].Type != Regular {
			continue
		}
		var f Frequency
		if k+1 < len(cadence) {
			f = bucket(gaps[k+1])
			if f == Unknown {
				f = bucket(gaps[k])
			}
			if f == Unknown {
				f = previous
			}
		} else {
			f = previous
			if f == Unknown {
				f = bucket(gaps[k])
			}
		}
		divs[i].Frequency = f
		if f != Unknown {
			previous = f
		}
	}
}
