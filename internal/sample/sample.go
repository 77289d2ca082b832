// Package sample provides the built-in demo document.
package sample

import "github.com/studiowebux/ispcli/internal/types"

// Document returns a fresh copy of the Weapon/Shield demo
func Document() types.Document {
	return types.Document{
		{
			ID:   1001,
			Name: "Weapon",
			Characteristics: []types.Characteristic{
				characteristic(1101, "Damage", 1202,
					types.Partition{ID: 1201, Name: "0", Value: "0"},
					types.Partition{ID: 1202, Name: "1-10", Value: "5"},
					types.Partition{ID: 1203, Name: "> 10", Value: "15"},
				),
				characteristic(1102, "Weight", 1212,
					types.Partition{ID: 1211, Name: "0-2 kg", Value: "1.5"},
					types.Partition{ID: 1212, Name: "3-4 kg", Value: "3.5"},
					types.Partition{ID: 1213, Name: "> 4 kg", Value: "5"},
				),
			},
		},
		{
			ID:   2001,
			Name: "Shield",
			Characteristics: []types.Characteristic{
				characteristic(2101, "Defense", 2202,
					types.Partition{ID: 2201, Name: "0", Value: "0"},
					types.Partition{ID: 2202, Name: "1-5", Value: "3"},
					types.Partition{ID: 2203, Name: "> 5", Value: "7"},
				),
				characteristic(2102, "Durability", 2212,
					types.Partition{ID: 2211, Name: "0-50%", Value: "25"},
					types.Partition{ID: 2212, Name: "51-75%", Value: "63"},
					types.Partition{ID: 2213, Name: "76-100%", Value: "88"},
				),
			},
		},
	}
}

func characteristic(id int64, name string, base int64, parts ...types.Partition) types.Characteristic {
	return types.Characteristic{
		ID:              id,
		Name:            name,
		Partitions:      parts,
		BasePartitionID: types.Int64Ptr(base),
	}
}
