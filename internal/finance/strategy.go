package finance

// Method identifica um método de valuation
type Method string

const (
	MethodDCF     Method = "dcf"
	MethodEbitda  Method = "ebitda"
	MethodReceita Method = "receita"
)

// IsValid verifica se o método é conhecido
func (m Method) IsValid() bool {
	switch m {
	case MethodDCF, MethodEbitda, MethodReceita:
		return true
	default:
		return false
	}
}

func (m Method) String() string {
	return string(m)
}

// Description retorna uma descrição legível do método
func (m Method) Description() string {
	switch m {
	case MethodDCF:
		return "Fluxo de caixa descontado"
	case MethodEbitda:
		return "Múltiplo de EBITDA do setor"
	case MethodReceita:
		return "Múltiplo de receita do setor"
	default:
		return "Método desconhecido"
	}
}

// RecommendationInput reúne o que uma estratégia pode considerar para escolher o método principal
type RecommendationInput struct {
	EbitdaAnual     float64
	ReceitaAnual    float64
	DCF             float64
	MultiploEbitda  float64
	MultiploReceita float64
	Preferred       Method
}

// RecommendationStrategy escolhe o método exibido como valor principal
type RecommendationStrategy func(in RecommendationInput) Method

// DefaultRecommendation escolhe ebitda quando o EBITDA anual é positivo,
// receita quando há receita e dcf nos demais casos.
func DefaultRecommendation(in RecommendationInput) Method {
	switch {
	case in.EbitdaAnual > 0:
		return MethodEbitda
	case in.ReceitaAnual > 0:
		return MethodReceita
	default:
		return MethodDCF
	}
}

// PreferredRecommendation respeita o método preferido configurado pela empresa
// e recorre à DefaultRecommendation quando ele não é válido.
func PreferredRecommendation(in RecommendationInput) Method {
	if in.Preferred.IsValid() {
		return in.Preferred
	}
	return DefaultRecommendation(in)
}

// Weights define os pesos de cada método na média de valuation
type Weights struct {
	DCF     float64
	Ebitda  float64
	Receita float64
}

// EqualWeights produz a média aritmética simples dos três métodos
var EqualWeights = Weights{DCF: 1, Ebitda: 1, Receita: 1}

// Average calcula a média ponderada. Soma de pesos não positiva retorna 0.
func (w Weights) Average(dcf, ebitda, receita float64) float64 {
	total := w.DCF + w.Ebitda + w.Receita
	if total <= 0 {
		return 0
	}
	return (dcf*w.DCF + ebitda*w.Ebitda + receita*w.Receita) / total
}

// TerminalPolicy define o tratamento do valor terminal quando a taxa de desconto
// não supera a taxa de crescimento e a fórmula de Gordon deixa de ser definida.
type TerminalPolicy string

const (
	// TerminalPolicyOmit descarta o valor terminal
	TerminalPolicyOmit TerminalPolicy = "omit"
	// TerminalPolicyClamp limita o crescimento perpétuo a taxa de desconto menos um spread
	TerminalPolicyClamp TerminalPolicy = "clamp"
)

// IsValid verifica se a política é conhecida
func (p TerminalPolicy) IsValid() bool {
	return p == TerminalPolicyOmit || p == TerminalPolicyClamp
}
