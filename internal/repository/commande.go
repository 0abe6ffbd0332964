package repository

import (
	"context"
	"fmt"

	"github.com/magscene/magsav-api/internal/domain"
	"github.com/magscene/magsav-api/internal/repository/dao"
)

var (
	ErrCommandeNotFound     = dao.ErrCommandeNotFound
	ErrNumeroCommandeExists = dao.ErrNumeroCommandeExists
)

type CommandeDAO interface {
	Insert(ctx context.Context, commande dao.Commande) (dao.Commande, error)
	FindAll(ctx context.Context) ([]dao.Commande, error)
	FindByID(ctx context.Context, id uint) (dao.Commande, error)
	FindByStatut(ctx context.Context, statut string) ([]dao.Commande, error)
	FindByFournisseur(ctx context.Context, fournisseurID uint) ([]dao.Commande, error)
	CountByNumeroPrefix(ctx context.Context, prefix string) (int64, error)
	Update(ctx context.Context, commande dao.Commande) (dao.Commande, error)
	UpdateStatut(ctx context.Context, id uint, statut string) error
	Delete(ctx context.Context, id uint) error
	Stats(ctx context.Context) (dao.CommandeStats, error)
}

type CommandeRepository struct {
	dao CommandeDAO
}

func NewCommandeRepository(dao CommandeDAO) *CommandeRepository {
	return &CommandeRepository{
		dao: dao,
	}
}

// Create stores the order with its lines and reloads it so the supplier
// name is resolved.
func (r *CommandeRepository) Create(ctx context.Context, commande domain.Commande) (domain.Commande, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(commande))
	if err != nil {
		return domain.Commande{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.FindByID(ctx, created.ID)
}

func (r *CommandeRepository) FindAll(ctx context.Context) ([]domain.Commande, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	return r.daosToDomain(found), nil
}

func (r *CommandeRepository) FindByID(ctx context.Context, id uint) (domain.Commande, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Commande{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *CommandeRepository) FindByStatut(ctx context.Context, statut domain.StatutCommande) ([]domain.Commande, error) {
	found, err := r.dao.FindByStatut(ctx, string(statut))
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByStatut -> %w", err)
	}

	return r.daosToDomain(found), nil
}

func (r *CommandeRepository) FindByFournisseur(ctx context.Context, fournisseurID uint) ([]domain.Commande, error) {
	found, err := r.dao.FindByFournisseur(ctx, fournisseurID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByFournisseur -> %w", err)
	}

	return r.daosToDomain(found), nil
}

func (r *CommandeRepository) CountByNumeroPrefix(ctx context.Context, prefix string) (int64, error) {
	count, err := r.dao.CountByNumeroPrefix(ctx, prefix)
	if err != nil {
		return 0, fmt.Errorf("r.dao.CountByNumeroPrefix -> %w", err)
	}

	return count, nil
}

func (r *CommandeRepository) Update(ctx context.Context, commande domain.Commande) (domain.Commande, error) {
	if _, err := r.dao.Update(ctx, r.domainToDao(commande)); err != nil {
		return domain.Commande{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.FindByID(ctx, commande.ID)
}

func (r *CommandeRepository) UpdateStatut(ctx context.Context, id uint, statut domain.StatutCommande) error {
	if err := r.dao.UpdateStatut(ctx, id, string(statut)); err != nil {
		return fmt.Errorf("r.dao.UpdateStatut -> %w", err)
	}

	return nil
}

func (r *CommandeRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *CommandeRepository) Stats(ctx context.Context) (domain.CommandeStats, error) {
	stats, err := r.dao.Stats(ctx)
	if err != nil {
		return domain.CommandeStats{}, fmt.Errorf("r.dao.Stats -> %w", err)
	}

	return domain.CommandeStats{
		Total:      stats.Total,
		Brouillons: stats.Brouillons,
		Envoyees:   stats.Envoyees,
		Recues:     stats.Recues,
		Facturees:  stats.Facturees,
	}, nil
}

func (r *CommandeRepository) domainToDao(c domain.Commande) dao.Commande {
	lignes := make([]dao.LigneCommande, 0, len(c.Lignes))
	for _, l := range c.Lignes {
		lignes = append(lignes, dao.LigneCommande{
			ID:                l.ID,
			CommandeID:        c.ID,
			ProduitNom:        l.ProduitNom,
			ProduitReference:  l.ProduitReference,
			QuantiteCommandee: l.QuantiteCommandee,
			QuantiteRecue:     l.QuantiteRecue,
			PrixUnitaireHT:    l.PrixUnitaireHT,
			TauxTVA:           l.TauxTVA,
			MontantHT:         l.MontantHT,
			MontantTVA:        l.MontantTVA,
			MontantTTC:        l.MontantTTC,
			StatutReception:   string(l.StatutReception),
		})
	}

	return dao.Commande{
		ID:                  c.ID,
		NumeroCommande:      c.NumeroCommande,
		FournisseurID:       c.FournisseurID,
		Statut:              string(c.Statut),
		Type:                string(c.Type),
		DateCommande:        c.DateCommande,
		DateLivraisonPrevue: c.DateLivraisonPrevue,
		DateLivraisonReelle: c.DateLivraisonReelle,
		MontantHT:           c.MontantHT,
		MontantTVA:          c.MontantTVA,
		MontantTTC:          c.MontantTTC,
		Commentaires:        c.Commentaires,
		AdresseLivraison:    c.AdresseLivraison,
		Reference:           c.Reference,
		Description:         c.Description,
		Urgente:             c.Urgente,
		Transporteur:        c.Transporteur,
		NumeroSuivi:         c.NumeroSuivi,
		Lignes:              lignes,
		CreatedAt:           c.CreatedAt,
		UpdatedAt:           c.UpdatedAt,
	}
}

func (r *CommandeRepository) daoToDomain(c dao.Commande) domain.Commande {
	lignes := make([]domain.LigneCommande, 0, len(c.Lignes))
	for _, l := range c.Lignes {
		lignes = append(lignes, domain.LigneCommande{
			ID:                l.ID,
			CommandeID:        l.CommandeID,
			ProduitNom:        l.ProduitNom,
			ProduitReference:  l.ProduitReference,
			QuantiteCommandee: l.QuantiteCommandee,
			QuantiteRecue:     l.QuantiteRecue,
			PrixUnitaireHT:    l.PrixUnitaireHT,
			TauxTVA:           l.TauxTVA,
			MontantHT:         l.MontantHT,
			MontantTVA:        l.MontantTVA,
			MontantTTC:        l.MontantTTC,
			StatutReception:   domain.StatutReception(l.StatutReception),
		})
	}

	commande := domain.Commande{
		ID:                  c.ID,
		NumeroCommande:      c.NumeroCommande,
		FournisseurID:       c.FournisseurID,
		Statut:              domain.StatutCommande(c.Statut),
		Type:                domain.TypeCommande(c.Type),
		DateCommande:        c.DateCommande,
		DateLivraisonPrevue: c.DateLivraisonPrevue,
		DateLivraisonReelle: c.DateLivraisonReelle,
		MontantHT:           c.MontantHT,
		MontantTVA:          c.MontantTVA,
		MontantTTC:          c.MontantTTC,
		Commentaires:        c.Commentaires,
		AdresseLivraison:    c.AdresseLivraison,
		Reference:           c.Reference,
		Description:         c.Description,
		Urgente:             c.Urgente,
		Transporteur:        c.Transporteur,
		NumeroSuivi:         c.NumeroSuivi,
		Lignes:              lignes,
		CreatedAt:           c.CreatedAt,
		UpdatedAt:           c.UpdatedAt,
	}
	if c.Fournisseur != nil {
		commande.FournisseurNom = c.Fournisseur.Nom
		commande.FournisseurEmail = c.Fournisseur.Email
	}

	return commande
}

func (r *CommandeRepository) daosToDomain(commandes []dao.Commande) []domain.Commande {
	result := make([]domain.Commande, 0, len(commandes))
	for _, c := range commandes {
		result = append(result, r.daoToDomain(c))
	}

	return result
}
