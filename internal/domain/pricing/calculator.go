package pricing

type PriceCalculator interface {
	QuoteCamping(s *CampingSettings, in CampingInput) Quote
	QuoteBarbecue(s *BarbecueSettings, in BarbecueInput) Quote
}

type DefaultPriceCalculator struct{}

func NewDefaultPriceCalculator() *DefaultPriceCalculator {
	return &DefaultPriceCalculator{}
}

func (DefaultPriceCalculator) QuoteCamping(s *CampingSettings, in CampingInput) Quote {
	return QuoteCamping(s, in)
}

func (DefaultPriceCalculator) QuoteBarbecue(s *BarbecueSettings, in BarbecueInput) Quote {
	return QuoteBarbecue(s, in)
}
