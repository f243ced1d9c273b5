package finance

import "math"

const (
	// DefaultProjectionYears é o horizonte usado quando o chamador não informa anos válidos
	DefaultProjectionYears = 5
	// DefaultClampSpread é a distância mínima entre desconto e crescimento na política clamp
	DefaultClampSpread = 0.01
)

// ValuationInput reúne as entradas de um cálculo de valuation
type ValuationInput struct {
	MonthlyRevenue  float64
	MonthlyCosts    float64
	Sector          string
	DiscountRate    float64
	GrowthRate      float64
	Years           int
	ManualMultiple  *float64
	PreferredMethod Method
}

// ValuationDetails detalha os agregados usados no cálculo
type ValuationDetails struct {
	EbitdaAnual          float64         `json:"ebitdaAnual"`
	ReceitaAnual         float64         `json:"receitaAnual"`
	ReceitaMensal        float64         `json:"receitaMensal"`
	CustosMensais        float64         `json:"custosMensais"`
	Setor                string          `json:"setor"`
	MultiplosSetor       SectorMultiples `json:"multiplosSetor"`
	MultiploEbitdaUsado  float64         `json:"multiploEbitdaUsado"`
	MultiploReceitaUsado float64         `json:"multiploReceitaUsado"`
	TaxaDesconto         float64         `json:"taxaDesconto"`
	TaxaCrescimento      float64         `json:"taxaCrescimento"`
	AnosProjecao         int             `json:"anosProjecao"`
	FluxosProjetados     []float64       `json:"fluxosProjetados"`
	ValorPresenteFluxos  float64         `json:"valorPresenteFluxos"`
	ValorTerminal        float64         `json:"valorTerminal"`
	ValorTerminalOmitido bool            `json:"valorTerminalOmitido"`
}

// ValuationResult é o resultado consumido diretamente pela interface
type ValuationResult struct {
	DCF               float64          `json:"dcf"`
	MultiploEbitda    float64          `json:"multiploEbitda"`
	MultiploReceita   float64          `json:"multiploReceita"`
	MediaValuation    float64          `json:"mediaValuation"`
	MetodoRecomendado Method           `json:"metodoRecomendado"`
	Detalhes          ValuationDetails `json:"detalhes"`
}

// ValueOf retorna o valor calculado para o método informado
func (r ValuationResult) ValueOf(method Method) float64 {
	switch method {
	case MethodDCF:
		return r.DCF
	case MethodEbitda:
		return r.MultiploEbitda
	case MethodReceita:
		return r.MultiploReceita
	default:
		return 0
	}
}

// DCFResult detalha um cálculo de fluxo de caixa descontado
type DCFResult struct {
	Value                 float64
	CashFlows             []float64
	PresentValueCashFlows float64
	PresentValueTerminal  float64
	TerminalOmitted       bool
}

// Engine calcula valuations com políticas configuráveis.
// Um Engine não possui estado mutável e pode ser compartilhado entre goroutines.
type Engine struct {
	recommend      RecommendationStrategy
	weights        Weights
	terminalPolicy TerminalPolicy
	clampSpread    float64
}

// Option configura um Engine
type Option func(*Engine)

// WithRecommendation troca a estratégia de método recomendado
func WithRecommendation(strategy RecommendationStrategy) Option {
	return func(e *Engine) {
		if strategy != nil {
			e.recommend = strategy
		}
	}
}

// WithWeights troca os pesos da média de valuation. Pesos com soma não positiva são ignorados.
func WithWeights(weights Weights) Option {
	return func(e *Engine) {
		if weights.DCF+weights.Ebitda+weights.Receita > 0 {
			e.weights = weights
		}
	}
}

// WithTerminalPolicy define o tratamento do valor terminal quando desconto <= crescimento.
// Spread não positivo usa DefaultClampSpread.
func WithTerminalPolicy(policy TerminalPolicy, spread float64) Option {
	return func(e *Engine) {
		if policy.IsValid() {
			e.terminalPolicy = policy
		}
		if spread > 0 {
			e.clampSpread = spread
		}
	}
}

// NewEngine cria um Engine com as políticas padrão: recomendação DefaultRecommendation,
// média simples e omissão do valor terminal indefinido.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		recommend:      DefaultRecommendation,
		weights:        EqualWeights,
		terminalPolicy: TerminalPolicyOmit,
		clampSpread:    DefaultClampSpread,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

var defaultEngine = NewEngine()

// Valuate calcula o valuation com as políticas padrão
func Valuate(monthlyRevenue, monthlyCosts float64, sector string, discountRate, growthRate float64, years int) ValuationResult {
	return defaultEngine.Valuate(ValuationInput{
		MonthlyRevenue: monthlyRevenue,
		MonthlyCosts:   monthlyCosts,
		Sector:         sector,
		DiscountRate:   discountRate,
		GrowthRate:     growthRate,
		Years:          years,
	})
}

// Valuate calcula DCF, múltiplo de EBITDA, múltiplo de receita, média e método recomendado.
// Nenhum ramo gera panic: resultados negativos, infinitos ou NaN viram 0.
func (e *Engine) Valuate(in ValuationInput) ValuationResult {
	years := in.Years
	if years <= 0 {
		years = DefaultProjectionYears
	}

	ebitdaAnual := (in.MonthlyRevenue - in.MonthlyCosts) * 12
	receitaAnual := in.MonthlyRevenue * 12

	multiples := MultiplesFor(in.Sector)
	ebitdaMultiple := multiples.EbitdaAverage()
	multiploEbitda := EbitdaMultiple(ebitdaAnual, multiples)
	if in.ManualMultiple != nil && *in.ManualMultiple > 0 {
		ebitdaMultiple = *in.ManualMultiple
		multiploEbitda = applyMultiple(ebitdaAnual, ebitdaMultiple)
	}
	receitaMultiple := multiples.ReceitaAverage()
	multiploReceita := RevenueMultiple(receitaAnual, multiples)

	dcf := e.DCF(ebitdaAnual, in.DiscountRate, in.GrowthRate, years)

	method := e.recommend(RecommendationInput{
		EbitdaAnual:     ebitdaAnual,
		ReceitaAnual:    receitaAnual,
		DCF:             dcf.Value,
		MultiploEbitda:  multiploEbitda,
		MultiploReceita: multiploReceita,
		Preferred:       in.PreferredMethod,
	})
	if !method.IsValid() {
		method = DefaultRecommendation(RecommendationInput{EbitdaAnual: ebitdaAnual, ReceitaAnual: receitaAnual})
	}

	return ValuationResult{
		DCF:               dcf.Value,
		MultiploEbitda:    multiploEbitda,
		MultiploReceita:   multiploReceita,
		MediaValuation:    nonNegative(e.weights.Average(dcf.Value, multiploEbitda, multiploReceita)),
		MetodoRecomendado: method,
		Detalhes: ValuationDetails{
			EbitdaAnual:          ebitdaAnual,
			ReceitaAnual:         receitaAnual,
			ReceitaMensal:        in.MonthlyRevenue,
			CustosMensais:        in.MonthlyCosts,
			Setor:                multiples.Sector,
			MultiplosSetor:       multiples,
			MultiploEbitdaUsado:  ebitdaMultiple,
			MultiploReceitaUsado: receitaMultiple,
			TaxaDesconto:         in.DiscountRate,
			TaxaCrescimento:      in.GrowthRate,
			AnosProjecao:         years,
			FluxosProjetados:     dcf.CashFlows,
			ValorPresenteFluxos:  dcf.PresentValueCashFlows,
			ValorTerminal:        dcf.PresentValueTerminal,
			ValorTerminalOmitido: dcf.TerminalOmitted,
		},
	}
}

// DCF projeta os fluxos anuais a partir do fluxo inicial, desconta cada ano k por (1+r)^k
// e soma o valor terminal de Gordon descontado por (1+r)^anos.
//
// O ano 1 usa o fluxo inicial; cada ano seguinte cresce (1+g) sobre o anterior.
// Quando r <= g a política do Engine decide entre omitir o valor terminal ou limitar g.
func (e *Engine) DCF(annualCashFlow, discountRate, growthRate float64, years int) DCFResult {
	if years <= 0 {
		years = DefaultProjectionYears
	}

	result := DCFResult{CashFlows: make([]float64, 0, years)}

	cashFlow := annualCashFlow
	discountFactor := 1.0
	for year := 1; year <= years; year++ {
		if year > 1 {
			cashFlow *= 1 + growthRate
		}
		discountFactor *= 1 + discountRate

		result.CashFlows = append(result.CashFlows, cashFlow)
		result.PresentValueCashFlows += cashFlow / discountFactor
	}

	terminalGrowth := growthRate
	if discountRate <= growthRate {
		switch e.terminalPolicy {
		case TerminalPolicyClamp:
			terminalGrowth = discountRate - e.clampSpread
		default:
			result.TerminalOmitted = true
		}
	}

	if !result.TerminalOmitted {
		terminalValue := cashFlow * (1 + terminalGrowth) / (discountRate - terminalGrowth)
		result.PresentValueTerminal = terminalValue / discountFactor
	}

	result.PresentValueCashFlows = finiteOrZero(result.PresentValueCashFlows)
	result.PresentValueTerminal = finiteOrZero(result.PresentValueTerminal)
	result.Value = nonNegative(result.PresentValueCashFlows + result.PresentValueTerminal)

	return result
}

// DCF calcula o fluxo de caixa descontado com a política padrão
func DCF(annualCashFlow, discountRate, growthRate float64, years int) DCFResult {
	return defaultEngine.DCF(annualCashFlow, discountRate, growthRate, years)
}

// EbitdaMultiple aplica a média dos múltiplos de EBITDA do setor
func EbitdaMultiple(ebitdaAnual float64, multiples SectorMultiples) float64 {
	return applyMultiple(ebitdaAnual, multiples.EbitdaAverage())
}

// RevenueMultiple aplica a média dos múltiplos de receita do setor
func RevenueMultiple(receitaAnual float64, multiples SectorMultiples) float64 {
	return applyMultiple(receitaAnual, multiples.ReceitaAverage())
}

func applyMultiple(base, multiple float64) float64 {
	return nonNegative(base * multiple)
}

func finiteOrZero(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func nonNegative(v float64) float64 {
	v = finiteOrZero(v)
	if v < 0 {
		return 0
	}
	return v
}
