package soil

import "github.com/geoservizi/gaugesim/internal/model/entities"

var descriptions = map[string]string{
	GW:       "Wide range of particle sizes, good distribution, little or no fines.",
	GP:       "Predominantly one size or missing some sizes, little or no fines.",
	GM:       "Gravel with significant silt content, low to no plasticity.",
	GC:       "Gravel with significant clay content, plastic fines.",
	SW:       "Wide range of sand sizes, good distribution, little or no fines.",
	SP:       "Predominantly one size or missing some sizes, little or no fines.",
	SM:       "Sand with significant silt content, low to no plasticity.",
	SC:       "Sand with significant clay content, plastic fines.",
	ML:       "Low plasticity silts, rock flour, silty or clayey fine sands.",
	CL:       "Low to medium plasticity clays, gravelly/sandy/silty clays.",
	OL:       "Low plasticity organic silts and clays.",
	MH:       "High plasticity silts, micaceous or diatomaceous fine sands and silts.",
	CH:       "High plasticity clays, high swelling potential.",
	OH:       "High plasticity organic clays.",
	PT:       "Peat, humus, swamp soils with high organic content.",
	TypeII:   "Crushed aggregate base course meeting Type II specifications.",
	Asphalt:  "Asphalt concrete paving material, bituminous mixture.",
	Concrete: "Portland cement concrete, hardened cementitious material.",
}

var identifications = map[string]string{
	GW:       "Field ID: No plasticity, coarse with varied sizes. Good compaction.",
	GP:       "Field ID: No plasticity, uniform size. Moderate compaction.",
	GM:       "Field ID: Slight plasticity when wet, dusty when dry.",
	GC:       "Field ID: Plasticity present, can roll thin threads when moist.",
	SW:       "Field ID: Granular feel, varied grain sizes, no cohesion.",
	SP:       "Field ID: Uniform grain size, no cohesion.",
	SM:       "Field ID: Slight plasticity when wet, dusty when dry.",
	SC:       "Field ID: Plasticity present, can form ribbons when moist.",
	ML:       "Field ID: Low plasticity, feels smooth, slightly sticky. Dilatant reaction.",
	CL:       "Field ID: Medium plasticity, can form ribbons 1\"-2\", moderate strength.",
	OL:       "Field ID: Dark color, organic odor, low plasticity.",
	MH:       "Field ID: Smooth, buttery feel. High dilatant reaction.",
	CH:       "Field ID: High plasticity, can form ribbons >2\", high strength.",
	OH:       "Field ID: Dark color, organic odor, high plasticity.",
	PT:       "Field ID: Very fibrous, organic odor, dark brown to black color.",
	TypeII:   "Field ID: Crushed stone mixture with fines, angular particles.",
	Asphalt:  "Field ID: Black color, petroleum odor, thermoplastic behavior.",
	Concrete: "Field ID: Gray, very hard, composed of cement paste and aggregate.",
}

var typicalUses = map[string]string{
	GW:       "Typical Uses: Road bases, backfill, drainage layers.",
	GP:       "Typical Uses: Drainage material, filter material.",
	GM:       "Typical Uses: Road bases, embankments, structural fill.",
	GC:       "Typical Uses: Liners, road bases with proper drainage.",
	SW:       "Typical Uses: Structural fill, backfill, concrete sand.",
	SP:       "Typical Uses: Drainage material, bedding material.",
	SM:       "Typical Uses: Fills, embankments, subgrades.",
	SC:       "Typical Uses: Liners, cores, fills with controlled permeability.",
	ML:       "Typical Uses: General fill, embankments (with proper compaction).",
	CL:       "Typical Uses: Liners, cores, fills with low permeability.",
	OL:       "Typical Uses: Not suitable for engineering use.",
	MH:       "Typical Uses: Not recommended for structural uses.",
	CH:       "Typical Uses: Liners, slurry walls, barriers.",
	OH:       "Typical Uses: Not suitable for engineering use.",
	PT:       "Typical Uses: Must be removed from construction areas.",
	TypeII:   "Typical Uses: Road bases, structural fill, foundation support.",
	Asphalt:  "Typical Uses: Pavements, waterproofing, roofing.",
	Concrete: "Typical Uses: Structural elements, pavements, foundation support.",
}

// Describe returns the classification text for class. Unknown classes get a
// generic placeholder so the caller can always render something.
func Describe(class string) entities.SoilDescription {
	if _, ok := descriptions[class]; !ok {
		return entities.SoilDescription{
			Description:    "No specific information available for this soil type.",
			Identification: "Please refer to UCSC classification guidelines.",
			TypicalUses:    "Consult field testing manual for identification guidelines.",
		}
	}
	return entities.SoilDescription{
		Description:    descriptions[class],
		Identification: identifications[class],
		TypicalUses:    typicalUses[class],
	}
}
