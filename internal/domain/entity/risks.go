package entity

// RiskFlags sinalizadores de risco químico (classificação europeia herdada
// do cadastro do LIMS, mapeada dos pictogramas GHS na importação).
type RiskFlags struct {
	O     bool `json:"O"`      // oxidante
	T     bool `json:"T"`      // tóxico
	TPlus bool `json:"T_PLUS"` // muito tóxico
	C     bool `json:"C"`      // corrosivo
	E     bool `json:"E"`      // explosivo
	N     bool `json:"N"`      // perigoso ao ambiente
	Xn    bool `json:"Xn"`     // nocivo
	Xi    bool `json:"Xi"`     // irritante
	F     bool `json:"F"`      // inflamável
	FPlus bool `json:"F_PLUS"` // extremamente inflamável
}
