// migrator executa a migração de dados legados do LIMS: lê um dump JSON
// (formato cru com fragmentos SQL/objetos, ou o backup relacional), roda o
// pipeline de reconciliação e escreve o resultado consolidado em JSON.
//
// Uso: go run ./cmd/migrator [caminho/dump.json]
// O caminho também pode vir de MIGRATOR_INPUT; "-" em MIGRATOR_OUTPUT (ou
// omitido) escreve em stdout.
package main

import (
	"context"
	"encoding/json"
	"os"

	"github.com/google/uuid"

	"github.com/rmendes/labstock/internal/application/dto"
	"github.com/rmendes/labstock/internal/application/reconcile"
	"github.com/rmendes/labstock/internal/domain"
	"github.com/rmendes/labstock/internal/domain/entity"
	"github.com/rmendes/labstock/pkg/config"
	"github.com/rmendes/labstock/pkg/logger"
)

// migrationResult formato do arquivo de saída.
type migrationResult struct {
	RunID      string                     `json:"runId"`
	Items      []entity.FlatInventoryItem `json:"items"`
	History    []entity.MovementRecord    `json:"history"`
	Normalized *dto.NormalizedData        `json:"normalized"`
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("configuração: " + err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level})
	runID := uuid.NewString()
	zl := log.With().Str("run_id", runID).Logger()

	input := cfg.Migrator.Input
	if len(os.Args) > 1 {
		input = os.Args[1]
	}
	if input == "" {
		zl.Fatal().Msg("nenhum dump informado (argumento ou MIGRATOR_INPUT)")
	}

	raw, err := os.ReadFile(input)
	if err != nil {
		zl.Fatal().Err(err).Str("arquivo", input).Msg("leitura do dump")
	}

	format := cfg.Migrator.Format
	if format == "auto" || format == "" {
		format = detectFormat(raw)
	}
	zl.Info().Str("arquivo", input).Str("formato", format).Msg("dump carregado")

	engine := reconcile.NewEngine(log)
	ctx := context.Background()

	var prepared *dto.PreparedData
	switch format {
	case "relational":
		var full dto.FullRelationalDump
		if err := json.Unmarshal(raw, &full); err != nil {
			zl.Fatal().Err(err).Msg("dump relacional inválido")
		}
		prepared = engine.PrepareRelationalData(ctx, full)
	case "raw":
		var dump dto.RawDump
		if err := json.Unmarshal(raw, &dump); err != nil {
			zl.Fatal().Err(err).Msg("dump cru inválido")
		}
		if len(dump.Produtos)+len(dump.Lotes)+len(dump.Movimentacoes) == 0 {
			zl.Fatal().Err(domain.ErrDumpVazio).Str("arquivo", input).Msg("nada a migrar")
		}
		prepared = engine.PrepareRawData(ctx, dump)
	default:
		zl.Fatal().Err(domain.ErrFormatoDesconhecido).Str("formato", format).
			Msg("use raw, relational ou auto")
	}

	result := migrationResult{
		RunID:      runID,
		Items:      prepared.Items,
		History:    prepared.History,
		Normalized: engine.DeriveNormalizedData(prepared.Items),
	}

	encoded, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		zl.Fatal().Err(err).Msg("serialização do resultado")
	}
	encoded = append(encoded, '\n')

	out := cfg.Migrator.Output
	if out == "" || out == "-" {
		if _, err := os.Stdout.Write(encoded); err != nil {
			zl.Fatal().Err(err).Msg("escrita em stdout")
		}
	} else {
		if err := os.WriteFile(out, encoded, 0o644); err != nil {
			zl.Fatal().Err(err).Str("arquivo", out).Msg("escrita do resultado")
		}
	}

	zl.Info().
		Int("itens", len(prepared.Items)).
		Int("movimentacoes", len(prepared.History)).
		Int("saldos", len(result.Normalized.Balances)).
		Msg("migração concluída")
}

// detectFormat decide entre o dump cru e o backup relacional pela presença
// da chave "relationalData" no nível raiz.
func detectFormat(raw []byte) string {
	var probe struct {
		RelationalData json.RawMessage `json:"relationalData"`
	}
	if err := json.Unmarshal(raw, &probe); err == nil && len(probe.RelationalData) > 0 {
		return "relational"
	}
	return "raw"
}
