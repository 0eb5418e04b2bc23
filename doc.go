/*
 * doc.go, part of chanstats.
 *
 * Copyright 2015 The ChannelAnalysis authors
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

/*Package chanstats is the main package of the chanstats library. It computes statistical
summaries over time-series observations collected from many independent simulation
trajectories, such as the per-ion coordination data produced by ion-channel MD runs.


	**chanstats Capabilities**


    Tallies, per trajectory, how many observations fall into each discrete
	occupancy state, given an externally produced classification.

    Converts per-trajectory state counts into populations, with weighted
	averages and cross-trajectory mean/standard-error summaries.

    Builds 1D population histograms of dihedral or coordination columns
	(subpackage histo), pooling any number of columns into one distribution.

    Transforms 2D joint distributions into relative free-energy (PMF)
	surfaces (subpackage pmf).

    Regroups flat observation streams into ordered per-trajectory,
	per-series value and time lists for scatter plots (subpackage series).

    Writes space-separated text output, optionally zstd-compressed
	(subpackage output), and renders plots (subpackage statplot).

This package deliberately does not read trajectory files, strip equilibration
frames or classify raw coordination codes into states. Those jobs belong to the
producers feeding it; chanstats only aggregates what it is given.
*/
package chanstats
