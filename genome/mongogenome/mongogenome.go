/*
Package mongogenome stores genotype matrices and ancestry catalogs on a
MongoDB database as an alternative to the SQL backends.
*/
package mongogenome

import (
	"context"
	"fmt"

	"github.com/CanDIG/ID3-Sickkids-Project/genome"
	mgo "gopkg.in/mgo.v2"
)

const (
	variantsCollectionName    = "variants"
	individualsCollectionName = "individuals"
	populationsCollectionName = "populations"
)

type variantDoc struct {
	Position int    `bson:"position"`
	Name     string `bson:"name"`
}

type individualDoc struct {
	Position     int     `bson:"position"`
	IndividualID string  `bson:"individual_id"`
	Population   string  `bson:"population"`
	Genotypes    []uint8 `bson:"genotypes"`
}

type populationDoc struct {
	Label string `bson:"label"`
}

/*
Save takes a context, a MongoDB session and a genotype matrix with its
ancestry catalog and stores them on the session's default database,
replacing any previously saved ones, or returns an error.
*/
func Save(ctx context.Context, session *mgo.Session, m *genome.Matrix, c *genome.Catalog) error {
	if m.NumRows() != c.NumIndividuals() {
		return fmt.Errorf("saving genome: matrix has %d rows but catalog has %d individuals", m.NumRows(), c.NumIndividuals())
	}
	db := session.DB("")
	for _, name := range []string{variantsCollectionName, individualsCollectionName, populationsCollectionName} {
		_, err := db.C(name).RemoveAll(nil)
		if err != nil {
			return fmt.Errorf("saving genome: emptying %s collection: %v", name, err)
		}
	}
	for i, name := range m.Variants() {
		err := db.C(variantsCollectionName).Insert(&variantDoc{Position: i, Name: name})
		if err != nil {
			return fmt.Errorf("saving genome: inserting variant %q: %v", name, err)
		}
	}
	for row := 0; row < m.NumRows(); row++ {
		genotypes := make([]uint8, m.NumVariants())
		for column := range genotypes {
			genotypes[column] = m.Value(row, column)
		}
		doc := &individualDoc{
			Position:     row,
			IndividualID: c.IndividualID(row),
			Population:   c.Population(row),
			Genotypes:    genotypes,
		}
		err := db.C(individualsCollectionName).Insert(doc)
		if err != nil {
			return fmt.Errorf("saving genome: inserting individual %q: %v", doc.IndividualID, err)
		}
	}
	for _, label := range c.Universe() {
		err := db.C(populationsCollectionName).Insert(&populationDoc{Label: label})
		if err != nil {
			return fmt.Errorf("saving genome: inserting population %q: %v", label, err)
		}
	}
	return nil
}

/*
Open takes a context and a MongoDB session and returns the genotype
matrix and ancestry catalog previously saved on the session's default
database, or an error if they cannot be read or are inconsistent.
*/
func Open(ctx context.Context, session *mgo.Session) (*genome.Matrix, *genome.Catalog, error) {
	db := session.DB("")
	var variantDocs []variantDoc
	err := db.C(variantsCollectionName).Find(nil).Sort("position").All(&variantDocs)
	if err != nil {
		return nil, nil, fmt.Errorf("opening genome: reading variants: %v", err)
	}
	variantNames := make([]string, len(variantDocs))
	for i, vd := range variantDocs {
		variantNames[i] = vd.Name
	}
	var individualDocs []individualDoc
	err = db.C(individualsCollectionName).Find(nil).Sort("position").All(&individualDocs)
	if err != nil {
		return nil, nil, fmt.Errorf("opening genome: reading individuals: %v", err)
	}
	ids := make([]string, len(individualDocs))
	populations := make([]string, len(individualDocs))
	rows := make([][]uint8, len(individualDocs))
	for i, id := range individualDocs {
		ids[i] = id.IndividualID
		populations[i] = id.Population
		rows[i] = id.Genotypes
	}
	var populationDocs []populationDoc
	err = db.C(populationsCollectionName).Find(nil).All(&populationDocs)
	if err != nil {
		return nil, nil, fmt.Errorf("opening genome: reading populations: %v", err)
	}
	universe := make([]string, len(populationDocs))
	for i, pd := range populationDocs {
		universe[i] = pd.Label
	}
	matrix, err := genome.NewMatrix(variantNames, rows)
	if err != nil {
		return nil, nil, fmt.Errorf("opening genome: %v", err)
	}
	catalog, err := genome.NewCatalog(ids, populations, universe)
	if err != nil {
		return nil, nil, fmt.Errorf("opening genome: %v", err)
	}
	return matrix, catalog, nil
}
