/*
 * table.go, part of gouff.
 *
 * Copyright 2024 Raul Mera <rmeraa{at}academicos(dot)uta(dot)cl>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package uff

import (
	"fmt"
	"sort"
)

//Hybrid is the geometry/hybridisation code of a reference type, the third
//character of most UFF labels.
type Hybrid int

const (
	NoHybrid            Hybrid = 0
	Linear              Hybrid = 1
	Trigonal            Hybrid = 2
	Tetrahedral         Hybrid = 3
	SquarePlanar        Hybrid = 4
	TrigonalBipyramidal Hybrid = 5
	Octahedral          Hybrid = 6
	Bridging            Hybrid = 8
	Resonant            Hybrid = 9
)

func (h Hybrid) String() string {
	switch h {
	case Linear:
		return "linear"
	case Trigonal:
		return "trigonal"
	case Tetrahedral:
		return "tetrahedral"
	case SquarePlanar:
		return "square planar"
	case TrigonalBipyramidal:
		return "trigonal bipyramidal"
	case Octahedral:
		return "octahedral"
	case Bridging:
		return "bridging"
	case Resonant:
		return "resonant"
	default:
		return "none"
	}
}

//Code returns the integer code used in UFF labels and the literature.
func (h Hybrid) Code() int { return int(h) }

//trigonalLike returns the hybrid with Resonant folded into Trigonal.
func (h Hybrid) trigonalLike() Hybrid {
	if h == Resonant {
		return Trigonal
	}
	return h
}

//Record is one row of the UFF reference table. Distances are in Angstrom,
//Theta in degrees, energies in kcal/mol.
type Record struct {
	ID          int
	Element     int //atomic number
	Label       string
	Description string
	R           float64 //bond radius
	Theta       float64 //natural angle
	X           float64 //van der Waals distance
	D           float64 //van der Waals well depth
	Zeta        float64 //van der Waals shape
	Z           float64 //effective charge
	Chi         float64 //GMP electronegativity
	Hybrid      Hybrid
	V           float64 //sp3 torsional barrier
	U           float64 //sp2 torsional barrier
}

func (r Record) String() string {
	return fmt.Sprintf("%s (%s)", r.Label, r.Description)
}

//Valid returns true if r is an actual table entry, and not the zero value.
func (r Record) Valid() bool {
	return r.Label != ""
}

//The UFF parameters, from Rappe et al. (J. Am. Chem. Soc. 114, 10024, 1992),
//with U values from MCCCS Towhee. C_am and N_am are the amide types.
var uffTable = [...]Record{
	{1, 1, "H_", "Generic hydrogen", 0.3540, 180.00, 2.8860, 0.0440, 12.000, 0.7120, 4.528, NoHybrid, 0.0, 0.0},
	{2, 1, "H_b", "Bridging hydrogen in B-H-B", 0.4600, 83.50, 2.8860, 0.0440, 12.000, 0.7125, 4.528, Bridging, 0.0, 0.0},
	{3, 2, "He4+4", "Helium", 0.8490, 90.00, 2.3620, 0.0560, 15.240, 0.0972, 9.66, SquarePlanar, 0.0, 0.0},
	{4, 3, "Li", "Lithium", 1.3360, 180.00, 2.4510, 0.0250, 12.000, 1.0255, 3.006, NoHybrid, 0.0, 2.0},
	{5, 4, "Be3+2", "Beryllium", 1.0740, 109.47, 2.7450, 0.0850, 12.000, 1.5650, 4.877, Tetrahedral, 0.0, 2.0},
	{6, 5, "B_3", "Boron (tetrahedral)", 0.8380, 109.47, 4.0830, 0.1800, 12.052, 1.7550, 5.11, Tetrahedral, 0.0, 2.0},
	{7, 5, "B_2", "Boron (trigonal)", 0.8280, 120.00, 4.0830, 0.1800, 12.052, 1.7550, 5.11, Trigonal, 0.0, 2.0},
	{8, 6, "C_3", "Carbon (tetrahedral)", 0.7570, 109.47, 3.8510, 0.1050, 12.730, 1.9120, 5.343, Tetrahedral, 2.119, 2.0},
	{9, 6, "C_R", "Carbon (resonant)", 0.7290, 120.00, 3.8510, 0.1050, 12.730, 1.9120, 5.343, Resonant, 0.0, 2.0},
	{10, 6, "C_2", "Carbon (trigonal)", 0.7320, 120.00, 3.8510, 0.1050, 12.730, 1.9120, 5.343, Trigonal, 0.0, 2.0},
	{11, 6, "C_1", "Carbon (linear)", 0.7060, 180.00, 3.8510, 0.1050, 12.730, 1.9120, 5.343, Linear, 0.0, 2.0},
	{12, 7, "N_3", "Nitrogen (tetrahedral)", 0.7000, 106.70, 3.6600, 0.0690, 13.407, 2.5438, 6.899, Tetrahedral, 0.450, 0.0},
	{13, 7, "N_R", "Nitrogen (resonant)", 0.6990, 120.00, 3.6600, 0.0690, 13.407, 2.5438, 6.899, Resonant, 0.0, 2.0},
	{14, 7, "N_2", "Nitrogen (trigonal)", 0.6850, 111.30, 3.6600, 0.0690, 13.407, 2.5438, 6.899, Trigonal, 0.0, 2.0},
	{15, 7, "N_1", "Nitrogen (linear)", 0.6560, 180.00, 3.6600, 0.0690, 13.407, 2.5438, 6.899, Linear, 0.0, 2.0},
	{16, 8, "O_3", "Oxygen (tetrahedral)", 0.6580, 104.51, 3.5000, 0.0600, 14.085, 2.2998, 8.741, Tetrahedral, 0.018, 2.0},
	{17, 8, "O_3_z", "Oxygen (in silicate)", 0.5280, 145.50, 3.5000, 0.0600, 14.085, 2.2998, 8.741, Tetrahedral, 0.018, 2.0},
	{18, 8, "O_R", "Oxygen (resonant)", 0.6800, 110.30, 3.5000, 0.0600, 14.085, 2.2998, 8.741, Resonant, 0.0, 2.0},
	{19, 8, "O_2", "Oxygen (trigonal)", 0.6340, 120.00, 3.5000, 0.0600, 14.085, 2.2998, 8.741, Trigonal, 0.0, 2.0},
	{20, 8, "O_1", "Oxygen (linear)", 0.6390, 180.00, 3.5000, 0.0600, 14.085, 2.2998, 8.741, Linear, 0.0, 2.0},
	{21, 9, "F_", "Flourine", 0.6680, 180.00, 3.3640, 0.0500, 14.762, 1.7350, 10.874, NoHybrid, 0.0, 2.0},
	{22, 10, "Ne4+4", "Neon", 0.9200, 90.00, 3.2430, 0.0420, 15.440, 0.1944, 11.04, SquarePlanar, 0.0, 2.0},
	{23, 11, "Na", "Sodium", 1.5390, 180.00, 2.9830, 0.0300, 12.000, 1.0809, 2.843, NoHybrid, 0.0, 1.25},
	{24, 12, "Mg3+2", "Magnesium", 1.4210, 109.47, 3.0210, 0.1110, 12.000, 1.7866, 3.951, Tetrahedral, 0.0, 1.25},
	{25, 13, "Al3", "Aluminium", 1.2440, 109.47, 4.4990, 0.5050, 11.278, 1.7924, 4.06, Tetrahedral, 0, 1.25},
	{26, 14, "Si3", "Silicon", 1.1170, 109.47, 4.2950, 0.4020, 12.175, 2.3232, 4.168, Tetrahedral, 1.225, 1.25},
	{27, 15, "P_3+3", "Phosphorus (tetrahedral, oxidation state +3)", 1.1010, 93.80, 4.1470, 0.3050, 13.072, 2.8627, 5.463, Tetrahedral, 2.4, 1.25},
	{28, 15, "P_3+5", "Phosphorus (tetrahedral, oxidation state +5)", 1.0560, 109.47, 4.1470, 0.3050, 13.072, 2.8627, 5.463, Tetrahedral, 2.4, 1.25},
	{29, 15, "P_3+q", "XXX", 1.0560, 109.47, 4.1470, 0.3050, 13.072, 2.8627, 5.463, Tetrahedral, 2.4, 1.25},
	{30, 16, "S_3+2", "Sulfur (tetrahedral, oxidation state +2)", 1.0640, 92.10, 4.0350, 0.2740, 13.969, 2.7032, 6.928, Tetrahedral, 0.484, 1.25},
	{31, 16, "S_3+4", "Sulfur (tetrahedral, oxidation state +4)", 1.0490, 103.20, 4.0350, 0.2740, 13.969, 2.7032, 6.928, Tetrahedral, 0.484, 1.25},
	{32, 16, "S_3+6", "Sulfur (tetrahedral, oxidation state +6)", 1.0270, 109.47, 4.0350, 0.2740, 13.969, 2.7032, 6.928, Tetrahedral, 0.484, 1.25},
	{33, 16, "S_R", "Sulfur (resonant)", 1.0770, 92.20, 4.0350, 0.2740, 13.969, 2.7032, 6.928, Resonant, 0.0, 1.25},
	{34, 16, "S_2", "Sulfur (trigonal)", 0.8540, 120.00, 4.0350, 0.2740, 13.969, 2.7032, 6.928, Trigonal, 0.0, 1.25},
	{35, 17, "Cl", "Chlorine", 1.0440, 180.00, 3.9470, 0.2270, 14.886, 2.3484, 8.564, NoHybrid, 0.0, 1.25},
	{36, 18, "Ar4+4", "Argon", 1.0320, 90.00, 3.8680, 0.1850, 15.763, 0.2994, 9.465, SquarePlanar, 0.0, 1.25},
	{37, 19, "K_", "Krypton", 1.9530, 180.00, 3.8120, 0.0350, 12.000, 1.1645, 2.421, NoHybrid, 0.0, 0.7},
	{38, 20, "Ca6+2", "Calcium (octahedral, oxidation state +2)", 1.7610, 90.00, 3.3990, 0.2380, 12.000, 2.1414, 3.231, Octahedral, 0.0, 0.7},
	{39, 21, "Sc3+3", "Scandium (tetrahedral, oxidation state +3)", 1.5130, 109.47, 3.2950, 0.0190, 12.000, 2.5924, 3.395, Tetrahedral, 0.0, 0.7},
	{40, 22, "Ti3+4", "Titanium (tetrahedral, oxidation state +4)", 1.4120, 109.47, 3.1750, 0.0170, 12.000, 2.6595, 3.47, Tetrahedral, 0.0, 0.7},
	{41, 22, "Ti6+4", "Titanium (octahedral, oxidation state +4)", 1.4120, 90.00, 3.1750, 0.0170, 12.000, 2.6595, 3.47, Octahedral, 0.0, 0.7},
	{42, 23, "V_3+5", "Vanadium", 1.4020, 109.47, 3.1440, 0.0160, 12.000, 2.6789, 3.65, Tetrahedral, 0.0, 0.7},
	{43, 24, "Cr6+3", "Chromium", 1.3450, 90.00, 3.0230, 0.0150, 12.000, 2.4631, 3.415, Octahedral, 0.0, 0.7},
	{44, 25, "Mn6+2", "Manganese", 1.3820, 90.00, 2.9610, 0.0130, 12.000, 2.4301, 3.325, Octahedral, 0.0, 0.7},
	{45, 26, "Fe3+2", "Iron (tetrahedral, oxidation state +2)", 1.4120, 109.47, 2.9120, 0.0130, 12.000, 2.4301, 3.76, Tetrahedral, 0.0, 0.7},
	{46, 26, "Fe6+2", "Iron (octahedral, oxidation state +2)", 1.3350, 90.00, 2.9120, 0.0130, 12.000, 2.4301, 3.76, Octahedral, 0.0, 0.7},
	{47, 27, "Co6+3", "Cobalt (octahedral, oxidation state +3)", 1.2410, 90.00, 2.8720, 0.0140, 12.000, 2.4301, 4.105, Octahedral, 0.0, 0.7},
	{48, 28, "Ni4+2", "Nickel", 1.1640, 90.00, 2.8340, 0.0150, 12.000, 2.4301, 4.465, SquarePlanar, 0.0, 0.7},
	{49, 29, "Cu3+1", "Copper", 1.3020, 109.47, 3.4950, 0.0050, 12.000, 1.7565, 4.2, Tetrahedral, 0.0, 0.7},
	{50, 30, "Zn3+2", "Zinc", 1.1930, 109.47, 2.7630, 0.1240, 12.000, 1.3084, 5.106, Tetrahedral, 0.0, 0.7},
	{51, 31, "Ga3+3", "Gallium (tetrahedral, oxidation state +3)", 1.2600, 109.47, 4.3830, 0.4150, 11.000, 1.8206, 3.641, Tetrahedral, 0.0, 0.7},
	{52, 32, "Ge3", "Germanium", 1.1970, 109.47, 4.2800, 0.3790, 12.000, 2.7888, 4.051, Tetrahedral, 0.701, 0.0},
	{53, 33, "As3+3", "Astatine (tetrahedral, oxidation state +3)", 1.2110, 92.10, 4.2300, 0.3090, 13.000, 2.8640, 5.188, Tetrahedral, 1.5, 0.0},
	{54, 34, "Se3+2", "Selenium", 1.1900, 90.60, 4.2050, 0.2910, 14.000, 2.7645, 6.428, Tetrahedral, 0.335, 0.0},
	{55, 35, "Br", "Bromine", 1.1920, 180.00, 4.1890, 0.2510, 15.000, 2.5186, 7.79, NoHybrid, 0.0, 0.7},
	{56, 36, "Kr4+4", "Krypton", 1.1470, 90.00, 4.1410, 0.2200, 16.000, 0.4520, 8.505, SquarePlanar, 0.0, 0.7},
	{57, 37, "Rb", "Rubidium", 2.2600, 180.00, 4.1140, 0.0400, 12.000, 1.5922, 2.331, NoHybrid, 0.0, 0.2},
	{58, 38, "Sr6+2", "Strontium", 2.0520, 90.00, 3.6410, 0.2350, 12.000, 2.4486, 3.024, Octahedral, 0.0, 0.2},
	{59, 39, "Y_3+3", "Yttrium (tetrahedral, oxidation state +3)", 1.6980, 109.47, 3.3450, 0.0720, 12.000, 3.2573, 3.83, Tetrahedral, 0.0, 0.2},
	{60, 40, "Zr3+4", "Zirconium", 1.5640, 109.47, 3.1240, 0.0690, 12.000, 3.6675, 3.4, Tetrahedral, 0.0, 0.2},
	{61, 41, "Nb3+5", "Niobium", 1.4730, 109.47, 3.1650, 0.0590, 12.000, 3.6179, 3.55, Tetrahedral, 0.0, 0.2},
	{62, 42, "Mo6+6", "Molybdenum (octahedral)", 1.4670, 90.00, 3.0520, 0.0560, 12.000, 3.4021, 3.465, Octahedral, 0.0, 0.2},
	{63, 42, "Mo3+6", "Molybdenum (tetrahedral)", 1.4840, 109.47, 3.0520, 0.0560, 12.000, 3.4021, 3.465, Tetrahedral, 0.0, 0.2},
	{64, 43, "Tc6+5", "Technecium", 1.3220, 90.00, 2.9980, 0.0480, 12.000, 3.4021, 3.29, Octahedral, 0.0, 0.2},
	{65, 44, "Ru6+2", "Rubidium", 1.4780, 90.00, 2.9630, 0.0560, 12.000, 3.4021, 3.575, Octahedral, 0.0, 0.2},
	{66, 45, "Rh6+3", "Rhodium (octahedral, oxidation state +3)", 1.3320, 90.00, 2.9290, 0.0530, 12.000, 3.5081, 3.975, Octahedral, 0.0, 0.2},
	{67, 46, "Pd4+2", "Palladium", 1.3380, 90.00, 2.8990, 0.0480, 12.000, 3.2077, 4.32, SquarePlanar, 0.0, 0.2},
	{68, 47, "Ag1+1", "Silver (linear, oxidation state +1)", 1.3860, 180.00, 3.1480, 0.0360, 12.000, 1.9557, 4.436, Linear, 0.0, 0.2},
	{69, 48, "Cd3+2", "Cadmium", 1.4030, 109.47, 2.8480, 0.2280, 12.000, 1.6525, 5.034, Tetrahedral, 0.0, 0.2},
	{70, 49, "In3+3", "Indium (tetrahedral, oxidation state +3)", 1.4590, 109.47, 4.4630, 0.5990, 11.000, 2.0704, 3.506, Tetrahedral, 0.0, 0.2},
	{71, 50, "Sn3", "Tin", 1.3980, 109.47, 4.3920, 0.5670, 12.000, 2.9608, 3.987, Tetrahedral, 0.199, 0.2},
	{72, 51, "Sb3+3", "Antimony (tetrahedral, oxidation state +3)", 1.4070, 91.60, 4.4200, 0.4490, 13.000, 2.7042, 4.899, Tetrahedral, 1.1, 0.2},
	{73, 52, "Te3+2", "Tellurium", 1.3860, 90.25, 4.4700, 0.3980, 14.000, 2.8821, 5.816, Tetrahedral, 0.3, 0.2},
	{74, 53, "I_", "Iodine", 1.3820, 180.00, 4.5000, 0.3390, 15.000, 2.6537, 6.822, NoHybrid, 0, 0.2},
	{75, 54, "Xe4+4", "Xenon", 1.2670, 90.00, 4.4040, 0.3320, 12.000, 0.5560, 7.595, SquarePlanar, 0, 0.2},
	{76, 55, "Cs", "Caesium", 2.5700, 180.00, 4.5170, 0.0450, 12.000, 1.5728, 2.183, NoHybrid, 0.0, 0.1},
	{77, 56, "Ba6+2", "Barium", 2.2770, 90.00, 3.7030, 0.3640, 12.000, 2.7266, 2.814, Octahedral, 0.0, 0.1},
	{78, 57, "La3+3", "Lanthanum (tetrahedral, oxidation state +3)", 1.9430, 109.47, 3.5220, 0.0170, 12.000, 3.3049, 2.8355, Tetrahedral, 0.0, 0.1},
	{79, 58, "Ce6+3", "Cerium (octahedral, oxidation state +3)", 1.8410, 90.00, 3.5560, 0.0130, 12.000, 3.3049, 2.774, Octahedral, 0.0, 0.1},
	{80, 59, "Pr6+3", "Praseodymium (octahedral, oxidation state +3)", 1.8230, 90.00, 3.6060, 0.0100, 12.000, 3.3049, 2.858, Octahedral, 0.0, 0.1},
	{81, 60, "Nd6+3", "Neodymium (octahedral, oxidation state +3)", 1.8160, 90.00, 3.5750, 0.0100, 12.000, 3.3049, 2.8685, Octahedral, 0.0, 0.1},
	{82, 61, "Pm6+3", "Prometheum (octahedral, oxidation state +3)", 1.8010, 90.00, 3.5470, 0.0090, 12.000, 3.3049, 2.881, Octahedral, 0.0, 0.1},
	{83, 62, "Sm6+3", "Samarium (octahedral, oxidation state +3)", 1.7800, 90.00, 3.5200, 0.0080, 12.000, 3.3049, 2.9115, Octahedral, 0.0, 0.1},
	{84, 63, "Eu6+3", "Europium (octahedral, oxidation state +3)", 1.7710, 90.00, 3.4930, 0.0080, 12.000, 3.3049, 2.8785, Octahedral, 0.0, 0.1},
	{85, 64, "Gd6+3", "Gadolinium (octahedral, oxidation state +3)", 1.7350, 90.00, 3.3680, 0.0090, 12.000, 3.3049, 3.1665, Octahedral, 0.0, 0.1},
	{86, 65, "Tb6+3", "Terbium (octahedral, oxidation state +3)", 1.7320, 90.00, 3.4510, 0.0070, 12.000, 3.3049, 3.018, Octahedral, 0.0, 0.1},
	{87, 66, "Dy6+3", "Dysprosium (octahedral, oxidation state +3)", 1.7100, 90.00, 3.4280, 0.0070, 12.000, 3.3049, 3.0555, Octahedral, 0.0, 0.1},
	{88, 67, "Ho6+3", "Holmium (octahedral, oxidation state +3)", 1.6960, 90.00, 3.4090, 0.0070, 12.000, 3.4157, 3.127, Octahedral, 0.0, 0.1},
	{89, 68, "Er6+3", "Erbium (octahedral, oxidation state +3)", 1.6730, 90.00, 3.3910, 0.0070, 12.000, 3.3049, 3.1865, Octahedral, 0.0, 0.1},
	{90, 69, "Tm6+3", "Thulium (octahedral, oxidation state +3)", 1.6600, 90.00, 3.3740, 0.0060, 12.000, 3.3049, 3.2514, Octahedral, 0.0, 0.1},
	{91, 70, "Yb6+3", "Ytterbium (octahedral, oxidation state +3)", 1.6370, 90.00, 3.3550, 0.2280, 12.000, 2.6177, 3.2889, Octahedral, 0.0, 0.1},
	{92, 71, "Lu6+3", "Lutetium (octahedral, oxidation state +3)", 1.6710, 90.00, 3.6400, 0.0410, 12.000, 3.2709, 2.9629, Octahedral, 0.0, 0.1},
	{93, 72, "Hf3+4", "Hafnium (tetrahedral, oxidation state +4)", 1.6110, 109.47, 3.1410, 0.0720, 12.000, 3.9212, 3.7, Tetrahedral, 0.0, 0.1},
	{94, 73, "Ta3+5", "Tantalum (tetrahedral, oxidation state +5)", 1.5110, 109.47, 3.1700, 0.0810, 12.000, 4.0748, 5.1, Tetrahedral, 0.0, 0.1},
	{95, 74, "W_6+6", "Tungsten (octahedral, oxidation state +6)", 1.3920, 90.00, 3.0690, 0.0670, 12.000, 3.6937, 4.63, Octahedral, 0.0, 0.1},
	{96, 74, "W_3+4", "Tungsten (tetrahedral, oxidation state +4)", 1.5260, 109.47, 3.0690, 0.0670, 12.000, 3.6937, 4.63, Tetrahedral, 0.0, 0.1},
	{97, 74, "W_3+6", "Tungsten (tetrahedral, oxidation state +6)", 1.3800, 109.47, 3.0690, 0.0670, 12.000, 3.6937, 4.63, Tetrahedral, 0.0, 0.1},
	{98, 75, "Re6+5", "Rhenium (octahedral, oxidation state +5)", 1.3720, 90.00, 2.9540, 0.0660, 12.000, 3.6937, 3.96, Octahedral, 0.0, 0.1},
	{99, 75, "Re3+7", "Rhenium (tetrahedral, oxidation state +7)", 1.3140, 109.47, 2.9540, 0.0660, 12.000, 3.6937, 3.96, Tetrahedral, 0.0, 0.1},
	{100, 76, "Os6+6", "Osmium (octahedral, oxidation state +6)", 1.3720, 90.00, 3.1200, 0.0370, 12.000, 3.6937, 5.14, Octahedral, 0.0, 0.1},
	{101, 77, "Ir6+3", "Iridium (octahedral, oxidation state +3)", 1.3710, 90.00, 2.8400, 0.0730, 12.000, 3.7307, 5.0, Octahedral, 0.0, 0.1},
	{102, 78, "Pt4+2", "Platinum", 1.3640, 90.00, 2.7540, 0.0800, 12.000, 3.3817, 4.79, SquarePlanar, 0.0, 0.1},
	{103, 79, "Au4+3", "Gold", 1.2620, 90.00, 3.2930, 0.0390, 12.000, 2.6255, 4.894, SquarePlanar, 0.0, 0.1},
	{104, 80, "Hg1+2", "Mercury", 1.3400, 180.00, 2.7050, 0.3850, 12.000, 1.7497, 6.27, Linear, 0.0, 0.1},
	{105, 81, "Tl3+3", "Thallium (tetrahedral, oxidation state +3)", 1.5180, 120.00, 4.3470, 0.6800, 11.000, 2.0685, 3.2, Tetrahedral, 0.0, 0.1},
	{106, 82, "Pb3", "Lead", 1.4590, 109.47, 4.2970, 0.6630, 12.000, 2.8461, 3.9, Tetrahedral, 0.1, 0.1},
	{107, 83, "Bi3+3", "Bismuth (tetrahedral, oxidation state +3)", 1.5120, 90.00, 4.3700, 0.5180, 13.000, 2.4700, 4.69, Tetrahedral, 1.0, 0.1},
	{108, 84, "Po3+2", "Polonium (tetrahedral, oxidation state +2)", 1.5000, 90.00, 4.7090, 0.3250, 14.000, 2.3329, 4.21, Tetrahedral, 0.3, 0.1},
	{109, 85, "At", "Astatine", 1.5450, 180.00, 4.7500, 0.2840, 15.000, 2.2357, 4.75, NoHybrid, 0.0, 0.1},
	{110, 86, "Rn4+4", "Radon", 1.4200, 90.00, 4.7650, 0.2480, 16.000, 0.5832, 5.37, SquarePlanar, 0.0, 0.1},
	{111, 87, "Fr", "Francium", 2.8800, 180.00, 4.9000, 0.0500, 12.000, 1.8469, 2.0, NoHybrid, 0.0, 0.0},
	{112, 88, "Ra6+2", "Radium (octahedral, oxidation state +2)", 2.5120, 90.00, 3.6770, 0.4040, 12.000, 2.9161, 2.843, Octahedral, 0.0, 0.0},
	{113, 89, "Ac6+3", "Actinium (octahedral, oxidation state +3)", 1.9830, 90.00, 3.4780, 0.0330, 12.000, 3.8882, 2.835, Octahedral, 0.0, 0.0},
	{114, 90, "Th6+4", "Thorium (octahedral, oxidation state +4)", 1.7210, 90.00, 3.3960, 0.0260, 12.000, 4.2021, 3.175, Octahedral, 0.0, 0.0},
	{115, 91, "Pa6+4", "Protactinium (octahedral, oxidation state +4)", 1.7110, 90.00, 3.4240, 0.0220, 12.000, 3.8882, 2.985, Octahedral, 0.0, 0.0},
	{116, 92, "U_6+4", "Uranium (octahedral, oxidation state +4)", 1.6840, 90.00, 3.3950, 0.0220, 12.000, 3.8882, 3.341, Octahedral, 0.0, 0.0},
	{117, 93, "Np6+4", "Neptunium (octahedral, oxidation state +4)", 1.6660, 90.00, 3.4240, 0.0190, 12.000, 3.8882, 3.549, Octahedral, 0.0, 0.0},
	{118, 94, "Pu6+4", "Plutonium (octahedral, oxidation state +4)", 1.6570, 90.00, 3.4240, 0.0160, 12.000, 3.8882, 3.243, Octahedral, 0.0, 0.0},
	{119, 95, "Am6+4", "Americium (octahedral, oxidation state +4)", 1.6600, 90.00, 3.3810, 0.0140, 12.000, 3.8882, 2.9895, Octahedral, 0.0, 0.0},
	{120, 96, "Cm6+3", "Curium (octahedral, oxidation state +3)", 1.8010, 90.00, 3.3260, 0.0130, 12.000, 3.8882, 2.8315, Octahedral, 0.0, 0.0},
	{121, 97, "Bk6+3", "Berkelium (octahedral, oxidation state +3)", 1.7610, 90.00, 3.3390, 0.0130, 12.000, 3.8882, 3.1935, Octahedral, 0.0, 0.0},
	{122, 98, "Cf6+3", "Californium (octahedral, oxidation state +3)", 1.7500, 90.00, 3.3130, 0.0130, 12.000, 3.8882, 3.197, Octahedral, 0.0, 0.0},
	{123, 99, "Es6+3", "Einsteinium (octahedral, oxidation state +3)", 1.7240, 90.00, 3.2990, 0.0120, 12.000, 3.8882, 3.333, Octahedral, 0.0, 0.0},
	{124, 100, "Fm6+3", "Fermium (octahedral, oxidation state +3)", 1.7120, 90.00, 3.2860, 0.0120, 12.000, 3.8882, 3.4, Octahedral, 0.0, 0.0},
	{125, 101, "Md6+3", "Mendelevium (octahedral, oxidation state +3)", 1.6890, 90.00, 3.2740, 0.0110, 12.000, 3.8882, 3.47, Octahedral, 0.0, 0.0},
	{126, 102, "No6+3", "Nobelium (octahedral, oxidation state +3)", 1.6790, 90.00, 3.2480, 0.0110, 12.000, 3.8882, 3.475, Octahedral, 0.0, 0.0},
	{127, 103, "Lr6+3", "Lawrencium (octahedral, oxidation state +3)", 1.6980, 90.00, 3.2360, 0.0110, 12.000, 3.8882, 3.5, Octahedral, 1.0, 1.0},
	{200, 6, "C_am", "Carbon (amide)", 0.7290, 120.00, 3.8510, 0.1050, 12.730, 1.9120, 5.343, Resonant, 0.0, 2.0},
	{201, 7, "N_am", "Nitrogen (amide)", 0.6990, 120.00, 3.6600, 0.0690, 13.407, 2.5438, 6.899, Resonant, 0.0, 2.0},
}

//Indexes into uffTable, built once from it.
var (
	byLabel   = indexByLabel()
	byElement = indexByElement()
)

func indexByLabel() map[string]int {
	ret := make(map[string]int, len(uffTable))
	for i, r := range uffTable {
		if _, ok := ret[r.Label]; ok {
			panic(PanicMsg(fmt.Sprintf("gouff: duplicated label %s in UFF table", r.Label)))
		}
		ret[r.Label] = i
	}
	return ret
}

func indexByElement() map[int][]int {
	ret := make(map[int][]int)
	for i, r := range uffTable {
		ret[r.Element] = append(ret[r.Element], i)
	}
	return ret
}

//TypeByLabel returns the reference record with the given label, and
//false if there is none.
func TypeByLabel(label string) (Record, bool) {
	i, ok := byLabel[label]
	if !ok {
		return Record{}, false
	}
	return uffTable[i], true
}

//MustTypeByLabel is like TypeByLabel but panics if the label doesn't exist.
//Use it only with labels known at compile time.
func MustTypeByLabel(label string) Record {
	r, ok := TypeByLabel(label)
	if !ok {
		panic(PanicMsg(fmt.Sprintf("%s: %s", ErrBadLabel, label)))
	}
	return r
}

//TypesForElement returns the reference records for the element with
//atomic number z, in table order. The slice is a copy.
func TypesForElement(z int) []Record {
	idx := byElement[z]
	ret := make([]Record, len(idx))
	for i, v := range idx {
		ret[i] = uffTable[v]
	}
	return ret
}

//Types returns a copy of the whole reference table, sorted by ID.
func Types() []Record {
	ret := make([]Record, len(uffTable))
	copy(ret, uffTable[:])
	sort.SliceStable(ret, func(i, j int) bool { return ret[i].ID < ret[j].ID })
	return ret
}
